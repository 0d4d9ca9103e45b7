package main

import "github.com/charmbracelet/lipgloss"

const (
	panelBg              = lipgloss.Color("#1c1c1c") // Panel background
	panelHighlight       = lipgloss.Color("#f0a30a") // Amber highlight
	panelAccent          = lipgloss.Color("#3fa7d6") // Accent blue
	panelBorder          = lipgloss.Color("#3fa7d6") // Use accent for border
	panelMuted           = lipgloss.Color("#6c6c6c") // Hidden and inactive pages
	panelText            = lipgloss.Color("#ffffff") // White text for contrast
	pageNavigationHelp   = "←/h: prev • →/l: next • 0-9: bookmark • /: go to"
	entityNavigationHelp = "↑/k: up • ↓/j: down • enter: toggle"
)
