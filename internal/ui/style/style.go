// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual.
//
// When disabled, all helpers return the input string unchanged with no
// ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Default ANSI-256 colors, overridable through the config file.
var defaultColors = map[string]string{
	"color_success": "2",
	"color_warning": "3",
	"color_error":   "1",
	"color_info":    "6",
	"color_muted":   "8",
	"color_header":  "5",
}

var (
	enabled bool

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	mutedStyle   lipgloss.Style
	headerStyle  lipgloss.Style
)

// Init initializes the style package. It respects the NO_COLOR and
// FB_NO_COLOR environment variables; if either is set, styling is
// disabled regardless of the enable parameter.
//
// cfg carries color overrides from the config file (color_success,
// color_warning, ...). A nil cfg uses the defaults.
//
// Call once from main before any output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("FB_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		initStyles(cfg)
	}
}

func colorFor(key string, cfg map[string]string) string {
	if cfg != nil {
		if v, ok := cfg[key]; ok && v != "" {
			return v
		}
	}
	return defaultColors[key]
}

func initStyles(cfg map[string]string) {
	// Force ANSI256 regardless of TTY detection so both basic and
	// extended colors render.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colorFor("color_success", cfg))
	warningStyle = makeStyle(colorFor("color_warning", cfg))
	errorStyle = makeStyle(colorFor("color_error", cfg))
	infoStyle = makeStyle(colorFor("color_info", cfg))
	mutedStyle = makeStyle(colorFor("color_muted", cfg))
	headerStyle = makeStyle(colorFor("color_header", cfg)).Bold(true)
}

func makeStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Success styles a success message.
func Success(s string) string {
	if !enabled {
		return s
	}
	return successStyle.Render(s)
}

// Warning styles a warning message.
func Warning(s string) string {
	if !enabled {
		return s
	}
	return warningStyle.Render(s)
}

// Error styles an error message.
func Error(s string) string {
	if !enabled {
		return s
	}
	return errorStyle.Render(s)
}

// Info styles an informational message.
func Info(s string) string {
	if !enabled {
		return s
	}
	return infoStyle.Render(s)
}

// Muted styles de-emphasized text.
func Muted(s string) string {
	if !enabled {
		return s
	}
	return mutedStyle.Render(s)
}

// Header styles a section header.
func Header(s string) string {
	if !enabled {
		return s
	}
	return headerStyle.Render(s)
}
