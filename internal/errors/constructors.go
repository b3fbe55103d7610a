package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *PunchClockError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *PunchClockError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

// Punch-log storage errors

func LogParseFailed(path string, cause error) *PunchClockError {
	return Wrap(cause, CategoryParse, SeverityFatal, "punch log has the wrong schema").
		WithContext("path", path)
}

func LogReadFailed(path string, cause error) *PunchClockError {
	return Wrap(cause, CategoryStorage, SeverityFatal, "punch log could not be read").
		WithContext("path", path)
}

func LogWriteFailed(path string, cause error) *PunchClockError {
	return Wrap(cause, CategoryStorage, SeverityFatal, "punch log could not be written").
		WithContext("path", path)
}
