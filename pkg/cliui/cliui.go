// Package cliui holds the terminal styles shared by hop commands.
package cliui

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
)

var (
	SuccessMark = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render("✓")
	FailMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗")

	KeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	DimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ScoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	PathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Mark returns a ✓ for nil errors or ✗ for non-nil errors.
func Mark(err error) string {
	if err != nil {
		return FailMark
	}
	return SuccessMark
}

// Step prints msg prefixed with the mark for err and returns err.
func Step(w io.Writer, msg string, err error) error {
	fmt.Fprintf(w, "  %s %s\n", Mark(err), msg)
	return err
}

// ScoreLine renders a clamped score column followed by a path. Styles are
// skipped when color is false so output stays pipeable.
func ScoreLine(score float64, path string, color bool) string {
	col := fmt.Sprintf("%4.0f", score)
	if !color {
		return col + " " + path
	}
	return ScoreStyle.Render(col) + " " + PathStyle.Render(path)
}
