package main

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(flavor.Green().Hex)).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(flavor.Red().Hex)).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(flavor.Yellow().Hex))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(flavor.Overlay0().Hex))
)

// verdict renders a yes/no status line.
func verdict(ok bool, yes, no string) string {
	if ok {
		return okStyle.Render("✓ " + yes)
	}
	return failStyle.Render("✗ " + no)
}
