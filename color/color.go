// Package color names the ANSI colors used across the CLI.
package color

import "github.com/charmbracelet/lipgloss"

// New returns the lipgloss color for an ANSI index or a hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
)

var (
	HiBlue   = New("12")
	HiPurple = New("13")
)
