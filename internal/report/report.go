// Package report renders worked time and clocked state for the CLI.
package report

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/punchclock/internal/punchlog"
)

// FormatDuration renders a duration as H:MM:SS. Hours are not collapsed into
// days and carry no zero padding, so a long log can read 125:07:09.
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// Message returns the one-line status printed on every invocation.
func Message(worked time.Duration, state punchlog.State) string {
	return fmt.Sprintf("You have worked %s; you are clocked %s.", FormatDuration(worked), state.Lower())
}
