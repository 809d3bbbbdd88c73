// Package printer provides styled console output for relver's
// user-facing result lines.
package printer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output.
var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// noColor disables styling when set, or when the terminal reports no
// color support at all.
var noColor = termenv.EnvColorProfile() == termenv.Ascii

// SetNoColor enables or disables colored output.
func SetNoColor(v bool) {
	noColor = v || termenv.EnvColorProfile() == termenv.Ascii
}

func render(style lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return render(boldStyle, text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return render(successStyle, text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return render(errorStyle, text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return render(warningStyle, text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return render(infoStyle, text)
}

// PrintSuccess prints text with success styling.
func PrintSuccess(text string) {
	fmt.Println(Success(text))
}

// PrintError prints text with error styling.
func PrintError(text string) {
	fmt.Println(Error(text))
}

// PrintWarning prints text with warning styling.
func PrintWarning(text string) {
	fmt.Println(Warning(text))
}

// PrintInfo prints text with info styling.
func PrintInfo(text string) {
	fmt.Println(Info(text))
}
