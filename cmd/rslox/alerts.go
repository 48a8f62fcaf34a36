package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JDCodeWork/rslox/lox"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	warningColor   = lipgloss.Color("#F59E0B")
	mutedColor     = lipgloss.Color("#6B7280")
	badgeTextColor = lipgloss.Color("#FAFAFA")

	errorBadge = lipgloss.NewStyle().
			Foreground(badgeTextColor).
			Background(errorColor).
			Bold(true).
			Padding(0, 1)

	warningBadge = lipgloss.NewStyle().
			Foreground(badgeTextColor).
			Background(warningColor).
			Bold(true).
			Padding(0, 1)

	infoBadge = lipgloss.NewStyle().
			Foreground(badgeTextColor).
			Background(accentColor).
			Bold(true).
			Padding(0, 1)

	successBadge = lipgloss.NewStyle().
			Foreground(badgeTextColor).
			Background(successColor).
			Bold(true).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

func alertError(message string) string   { return errorBadge.Render("ERROR") + " " + message }
func alertWarning(message string) string { return warningBadge.Render("WARNING") + " " + message }
func alertInfo(message string) string    { return infoBadge.Render("INFO") + " " + message }
func alertSuccess(message string) string { return successBadge.Render("SUCCESS") + " " + message }

// renderDiagnostic formats one interpreter error: badge, phase, message,
// and a caret frame pointing into source when the error carries a position.
func renderDiagnostic(source string, err error) string {
	var phase lox.PhaseError
	if !errors.As(err, &phase) {
		return alertError(err.Error())
	}

	var b strings.Builder
	b.WriteString(alertError(phase.Kind() + " | " + phase.Error()))

	if pos, ok := diagnosticPosition(err); ok {
		if frame := lox.FormatCodeFrame(source, pos); frame != "" {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render(frame))
		}
	}
	return b.String()
}

func diagnosticPosition(err error) (lox.Position, bool) {
	switch e := err.(type) {
	case *lox.ScanError:
		return e.Pos, true
	case *lox.ParseError:
		return e.Pos, true
	case *lox.ResolveError:
		return e.Pos, true
	case *lox.RuntimeError:
		return e.Pos, true
	}
	return lox.Position{}, false
}

func reportDiagnostics(w io.Writer, source string, errs []error) {
	for _, err := range errs {
		fmt.Fprintln(w, renderDiagnostic(source, err))
	}
}
