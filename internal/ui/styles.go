// Package ui holds the terminal styles for game output.
package ui

import "charm.land/lipgloss/v2"

// Color palette — basic ANSI colors so the output reads the same on any
// terminal theme.
var (
	Green       = lipgloss.Color("2")
	BrightGreen = lipgloss.Color("10")
	Blue        = lipgloss.Color("12")
	Red         = lipgloss.Color("9")
)

var (
	roundHeaderStyle = lipgloss.NewStyle().
				Foreground(Green).
				Bold(true)

	robotMoveStyle = lipgloss.NewStyle().
			Foreground(Blue)

	resultStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	legendStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// RoundHeader styles a round announcement line.
func RoundHeader(s string) string { return roundHeaderStyle.Render(s) }

// RobotMove styles the robot's played-move line.
func RobotMove(s string) string { return robotMoveStyle.Render(s) }

// Result styles a round result line.
func Result(s string) string { return resultStyle.Render(s) }

// Error styles a fatal error line.
func Error(s string) string { return errorStyle.Render(s) }

// Legend styles the moves-legend heading.
func Legend(s string) string { return legendStyle.Render(s) }
