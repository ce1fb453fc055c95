// Package errors provides structured error handling for the kacl CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration errors are caused by invalid or missing configuration.
	Configuration
	// Source errors occur when the changelog document cannot be obtained
	// (missing file, unreadable git ref, failed remote fetch).
	Source
	// Runtime errors occur during command execution.
	Runtime
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Source:
		return "Source Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Argument, Configuration, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates a new argument error with the given message and remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates a new argument error that includes correct usage syntax.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewSourceError creates a new source error.
func NewSourceError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Source,
		Message:     message,
		Remediation: remediation,
	}
}
