package ui

import (
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "/health", truncatePath("/health", 30))
	assert.Equal(t, "/api/gen...", truncatePath("/api/generate-post", 11))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "1a2b3c4d", shortID("1a2b3c4d-0000-4000-8000-000000000000"))
}

func TestPrintFunctionsDoNotPanic(t *testing.T) {
	color.NoColor = true

	assert.NotPanics(t, func() {
		PrintBanner()
		PrintStartupInfo("127.0.0.1", 8080, "openai", "gpt-4o-mini")
		PrintConfigWarning("openai api key is not configured")
		PrintRequest("POST", "/api/generate-post", 200, 1500*time.Millisecond, "1a2b3c4d-0000")
		PrintRequest("DELETE", "/x", 502, 12*time.Second, "")
		PrintShutdown()
		PrintGoodbye()
	})
}
