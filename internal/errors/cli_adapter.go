package errors

import (
	"fmt"
	"log/slog"
)

// CLIErrorAdapter handles error presentation and exit code determination for
// the punchclock CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if pce, ok := err.(*PunchClockError); ok {
		return a.exitCodeFromPunchClock(pce)
	}

	return 1
}

// exitCodeFromPunchClock maps PunchClockError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromPunchClock(err *PunchClockError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryStorage, CategoryParse:
		return 11 // Punch-log error
	case CategoryRuntime:
		return 12 // Runtime error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if pce, ok := err.(*PunchClockError); ok {
		return a.formatPunchClock(pce)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatPunchClock formats a PunchClockError for display.
func (a *CLIErrorAdapter) formatPunchClock(err *PunchClockError) string {
	if a.verbose {
		return err.Error()
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return err.Message
	default:
		return fmt.Sprintf("%s: %s", err.Category, err.Message)
	}
}

// LogError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) LogError(err error) {
	pce, ok := err.(*PunchClockError)
	if !ok {
		a.logger.Error(err.Error())
		return
	}

	attrs := []any{slog.String("category", string(pce.Category))}
	for key, value := range pce.Context {
		attrs = append(attrs, slog.Any(key, value))
	}

	switch pce.Severity {
	case SeverityWarning:
		a.logger.Warn(pce.Message, attrs...)
	default:
		a.logger.Error(pce.Message, attrs...)
	}
}
