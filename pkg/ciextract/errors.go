package ciextract

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable indicates the workbook could not be loaded.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrKeyNotFound indicates the function name has no block in the key column.
var ErrKeyNotFound = errors.New("function name not found")

// ErrInvalidLayout indicates the sheet layout configuration is inconsistent.
var ErrInvalidLayout = errors.New("invalid sheet layout")

// SourceError represents a failure to load the workbook.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is reports SourceError as ErrSourceUnavailable.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// ExtractionError represents an unexpected error while answering a query.
type ExtractionError struct {
	Function  string
	Component string // "schema", "block", "filter", "project"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error for function %q (%s): %v", e.Function, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(function, component string, err error) *ExtractionError {
	return &ExtractionError{
		Function:  function,
		Component: component,
		Err:       err,
	}
}

// Display messages for the sentinel rows returned by GetMatchingDocuments.
const (
	MsgSourceUnavailable = "Excel file could not be loaded: "
	MsgKeyNotFound       = "Function name not found."
	MsgNoMatches         = "No matching documents found."
	MsgExtractionFailed  = "An error occurred during document extraction: "
)

// MsgSelectionRequired is shown when a query is submitted without a function
// name or without any stage.
const MsgSelectionRequired = "Please select a function name and at least one stage name."

// displayMessage maps a query error to its sentinel row text.
func displayMessage(err error) string {
	var srcErr *SourceError
	switch {
	case errors.As(err, &srcErr):
		return MsgSourceUnavailable + srcErr.Err.Error()
	case errors.Is(err, ErrKeyNotFound):
		return MsgKeyNotFound
	default:
		return MsgExtractionFailed + err.Error()
	}
}
