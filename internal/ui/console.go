// Package ui provides colored console output for the postgen server.
package ui

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	// Badge colors
	successBadge = color.New(color.BgGreen, color.FgBlack, color.Bold)
	warningBadge = color.New(color.FgYellow, color.Bold)
	errorBadge   = color.New(color.BgRed, color.FgWhite, color.Bold)
	infoBadge    = color.New(color.FgCyan, color.Bold)
	debugBadge   = color.New(color.FgMagenta)

	// Text colors
	successText = color.New(color.FgGreen, color.Bold)
	warningText = color.New(color.FgYellow)
	errorText   = color.New(color.FgRed)
	mutedText   = color.New(color.FgHiBlack)
	accentText  = color.New(color.FgMagenta, color.Bold)
	neonBlue    = color.New(color.FgHiCyan, color.Bold)

	// Method colors
	methodPOST = color.New(color.BgHiMagenta, color.FgBlack, color.Bold)
	methodGET  = color.New(color.BgHiCyan, color.FgBlack, color.Bold)
)

// PrintRequest logs a request with styled output.
// Format: 15:04:05  POST  /api/generate-post   200   812ms id:1a2b3c4d
func PrintRequest(method, path string, status int, latency time.Duration, requestID string) {
	mutedText.Printf("%s ", time.Now().Format("15:04:05"))

	printMethodBadge(method)
	fmt.Print(" ")

	fmt.Printf("%-30s ", truncatePath(path, 30))

	printStatusBadge(status)
	fmt.Print(" ")

	printLatency(latency)
	fmt.Print(" ")

	if requestID != "" {
		mutedText.Printf("id:%s", shortID(requestID))
	}

	fmt.Println()
}

// printMethodBadge prints the HTTP method with appropriate color.
func printMethodBadge(method string) {
	switch method {
	case "POST":
		methodPOST.Printf(" %s ", method)
	case "GET":
		methodGET.Printf(" %s ", method)
	default:
		debugBadge.Printf(" %s ", method)
	}
}

// printStatusBadge prints the status code with appropriate color.
func printStatusBadge(status int) {
	switch {
	case status >= 200 && status < 300:
		successBadge.Printf(" %d ", status)
	case status >= 300 && status < 400:
		infoBadge.Printf(" %d ", status)
	case status >= 400 && status < 500:
		warningBadge.Printf(" %d ", status)
	default:
		errorBadge.Printf(" %d ", status)
	}
}

// printLatency prints latency with color gradient.
// Completions are slow, so the thresholds are in seconds: green < 2s, yellow < 10s, red above.
func printLatency(latency time.Duration) {
	latencyStr := fmt.Sprintf("%6dms", latency.Milliseconds())

	switch {
	case latency < 2*time.Second:
		successText.Print(latencyStr)
	case latency < 10*time.Second:
		warningText.Print(latencyStr)
	default:
		errorText.Print(latencyStr)
	}
}

// shortID returns the first 8 characters of a request id.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// truncatePath truncates a path to maxLen characters.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return path[:maxLen-3] + "..."
}

// PrintStartupInfo prints styled server startup information.
func PrintStartupInfo(host string, port int, provider, model string) {
	fmt.Println()
	infoBadge.Print("[POSTGEN]")
	fmt.Print(" Server starting on ")
	neonBlue.Printf("http://%s:%d\n", host, port)

	infoBadge.Print("[POSTGEN]")
	fmt.Print(" Provider: ")
	accentText.Print(provider)
	fmt.Print(" | Model: ")
	accentText.Println(model)

	fmt.Println()
	printEndpoints()
}

// PrintConfigWarning flags a provider configuration problem found at startup.
// The server still starts; requests fail until the configuration is fixed.
func PrintConfigWarning(msg string) {
	fmt.Print("⚠️  ")
	warningBadge.Print("[CONFIG]")
	fmt.Print(" ")
	warningText.Println(msg)
}

// printEndpoints prints the available API endpoints.
func printEndpoints() {
	mutedText.Println("  ┌─────────────────────────────────────────────────────────┐")
	mutedText.Print("  │ ")
	methodPOST.Print(" POST ")
	fmt.Print(" /api/generate-post   ")
	mutedText.Print("  Generate a social-media post     ")
	mutedText.Println(" │")

	mutedText.Print("  │ ")
	methodGET.Print(" GET  ")
	fmt.Print(" /health              ")
	mutedText.Print("  Health check                     ")
	mutedText.Println(" │")

	mutedText.Println("  └─────────────────────────────────────────────────────────┘")
	fmt.Println()
}

// PrintShutdown prints a styled shutdown message.
func PrintShutdown() {
	fmt.Println()
	warningBadge.Print("[SHUTDOWN]")
	warningText.Println(" Graceful shutdown initiated...")
}

// PrintGoodbye prints a styled goodbye message.
func PrintGoodbye() {
	successBadge.Print(" OK ")
	fmt.Print(" ")
	successText.Println("Server stopped. Goodbye! 👋")
}
