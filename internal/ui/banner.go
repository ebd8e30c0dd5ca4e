package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// Version is printed in the banner.
const Version = "v1.0.0"

// PrintBanner displays the ASCII art startup banner.
func PrintBanner() {
	fmt.Println()

	cyan := color.New(color.FgCyan, color.Bold)
	magenta := color.New(color.FgMagenta, color.Bold)
	hiCyan := color.New(color.FgHiCyan)
	yellow := color.New(color.FgYellow, color.Bold)
	white := color.New(color.FgWhite)
	dim := color.New(color.FgHiBlack)

	art := []string{
		"██████╗  ██████╗ ███████╗████████╗ ██████╗ ███████╗███╗   ██╗",
		"██╔══██╗██╔═══██╗██╔════╝╚══██╔══╝██╔════╝ ██╔════╝████╗  ██║",
		"██████╔╝██║   ██║███████╗   ██║   ██║  ███╗█████╗  ██╔██╗ ██║",
		"██╔═══╝ ██║   ██║╚════██║   ██║   ██║   ██║██╔══╝  ██║╚██╗██║",
		"██║     ╚██████╔╝███████║   ██║   ╚██████╔╝███████╗██║ ╚████║",
		"╚═╝      ╚═════╝ ╚══════╝   ╚═╝    ╚═════╝ ╚══════╝╚═╝  ╚═══╝",
	}

	cyan.Println("╔══════════════════════════════════════════════════════════════════╗")
	for i, line := range art {
		cyan.Print("║  ")
		if i%2 == 0 {
			hiCyan.Print(line)
		} else {
			magenta.Print(line)
		}
		cyan.Println("   ║")
	}
	cyan.Println("╠══════════════════════════════════════════════════════════════════╣")

	cyan.Print("║  ")
	yellow.Print("✍️  POST GENERATOR")
	dim.Print("  │  ")
	white.Print("OpenAI / Azure OpenAI")
	dim.Print("  │  ")
	white.Print(Version)
	dim.Print("            ")
	cyan.Println("║")

	cyan.Println("╚══════════════════════════════════════════════════════════════════╝")

	fmt.Println()
}
