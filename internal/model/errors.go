package model

import (
	"fmt"
	"strings"
)

// Violation describes one field-level schema violation.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationError reports every schema violation found in one request. It
// is recoverable: the caller surfaces the violations and rejects the input.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "validation failed: " + e.Violations[0].String()
	}
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fmt.Sprintf("validation failed on %d fields: %s", len(e.Violations), strings.Join(fields, ", "))
}

// NewValidationError creates a validation error from accumulated violations.
func NewValidationError(violations []Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// RenderError represents an internal failure in the rendering or export
// stage. Valid input never produces one; it indicates a renderer defect or
// a broken deployment, so it is surfaced without detail and never retried.
type RenderError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render failed [%s]: %s (%v)", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("render failed [%s]: %s", e.Stage, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new render error for the given stage.
func NewRenderError(stage, message string, cause error) *RenderError {
	return &RenderError{
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}
