package news_tools

import (
	"errors"
	"fmt"
)

type FailureKind string

const (
	FK_Validation  FailureKind = "validation"
	FK_EmptyResult FailureKind = "empty-result"
	FK_HttpStatus  FailureKind = "http-status"
	FK_Transport   FailureKind = "transport"
	FK_Parse       FailureKind = "parse"
)

// ToolError is a terminal failure of a single tool call. Error() is the
// description handed back to the planner, so its wording is kept stable.
type ToolError struct {
	Kind       FailureKind
	Url        string
	StatusCode int
	Err        error
	// Message replaces the default description when set
	Message    string
}

func (e *ToolError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	switch e.Kind {
	case FK_Validation:
		if e.Err != nil {
			return fmt.Sprintf("Invalid URL: %s (%v)", e.Url, e.Err)
		}
		return fmt.Sprintf("Invalid URL: %s", e.Url)
	case FK_EmptyResult:
		return fmt.Sprintf("No entries found for URL: %s", e.Url)
	case FK_HttpStatus:
		return fmt.Sprintf("Failed to retrieve URL: %s (status %d)", e.Url, e.StatusCode)
	default:
		return fmt.Sprintf("An error occurred: %v", e.Err)
	}
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err, or "" when err is not a ToolError.
func KindOf(err error) FailureKind {
	var te *ToolError
	if errors.As(err, &te) {
		return te.Kind
	}

	return ""
}
