package ui

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
)

// Colors
var (
	Primary = lipgloss.Color("#33A8FF")
	Muted   = lipgloss.Color("#6B7280")
	Success = lipgloss.Color("#10B981")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
)

var (
	InfoStyle = lipgloss.NewStyle().
			Foreground(Primary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Status prints human-facing progress lines. Colour is downsampled to what w
// supports, so piping into a file yields plain text.
type Status struct {
	w io.Writer
}

func NewStatus(w io.Writer) *Status {
	return &Status{w: w}
}

func (s *Status) Info(format string, args ...any) {
	s.print(InfoStyle, format, args...)
}

func (s *Status) Detail(format string, args ...any) {
	s.print(MutedStyle, format, args...)
}

func (s *Status) Success(format string, args ...any) {
	s.print(SuccessStyle, format, args...)
}

func (s *Status) Warn(format string, args ...any) {
	s.print(WarningStyle, format, args...)
}

func (s *Status) Error(format string, args ...any) {
	s.print(ErrorStyle, format, args...)
}

func (s *Status) print(style lipgloss.Style, format string, args ...any) {
	lipgloss.Fprintln(s.w, style.Render(fmt.Sprintf(format, args...)))
}
