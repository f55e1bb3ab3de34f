package main

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")
)

var (
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1).Align(lipgloss.Right)
	styleBorder  = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)
