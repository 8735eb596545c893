// Package errors provides actionable error handling with context-aware suggestions.
//
// Deletion failures are the main user-visible errors in venv-sweep, and a raw
// "permission denied" gives the user nothing to act on. This package enriches
// standard Go errors with a category and concrete suggestions so the summary
// screen can tell the user what to try next.
//
// Basic usage:
//
//	enricher := errors.NewEnricher()
//	if err := fsys.RemoveAll(path); err != nil {
//	    actionable := enricher.Enrich(err, path)
//	    fmt.Println(actionable.Error())
//	    fmt.Println(errors.FormatSuggestions(actionable))
//	}
package errors

import "strings"

// Exported constants.
const (
	CategoryDelete     ErrorCategory = "delete"
	CategoryPath       ErrorCategory = "path"
	CategoryPermission ErrorCategory = "permission"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	originalError string,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		originalError: originalError,
		category:      category,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
	}
}

// FormatSuggestions formats the suggestions from an ActionableError as a
// bulleted list for display in the TUI. Returns empty string if the error is
// nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	originalError string
	category      ErrorCategory
	suggestions   []string
	affectedPath  string
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.originalError
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Suggestions returns the actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}

// AffectedPath returns the path the error relates to, if known.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}
