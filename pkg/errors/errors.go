package errors

import (
	"fmt"
)

// ValidationError captures field or theme validation issues raised at
// registration or window construction time. These are programmer errors
// and are always surfaced immediately.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ThemeError indicates an unknown theme name at window construction.
type ThemeError struct {
	Name string
}

// NewThemeError constructs a ThemeError for the given theme name.
func NewThemeError(name string) error {
	return &ThemeError{Name: name}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown theme: %q", e.Name)
}

// PersistError represents a configuration persistence failure. Persistence
// is best-effort: these errors are logged and swallowed, never returned to
// callers of Save or Load.
type PersistError struct {
	Op       string
	Identity string
	Err      error
}

// NewPersistError constructs a PersistError for the given operation.
func NewPersistError(op, identity string, err error) error {
	return &PersistError{Op: op, Identity: identity, Err: err}
}

func (e *PersistError) Error() string {
	if e == nil {
		return ""
	}
	if e.Identity != "" {
		return fmt.Sprintf("persist error [%s] %s: %v", e.Identity, e.Op, e.Err)
	}
	return fmt.Sprintf("persist error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *PersistError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError wraps a panic recovered from a caller-supplied render
// callback so it can be shown inline instead of aborting the frame.
type RenderError struct {
	View    string
	Message string
}

// NewRenderError constructs a RenderError from a recovered panic value.
func NewRenderError(view string, recovered any) error {
	return &RenderError{View: view, Message: fmt.Sprint(recovered)}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.View != "" {
		return fmt.Sprintf("render error [%s]: %s", e.View, e.Message)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}
