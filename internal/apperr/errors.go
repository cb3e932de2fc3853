// Package apperr defines the error values shared across the application layers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// ParseError reports a post file whose front-matter header matched but whose
// date field could not be parsed as YYYY-MM-DD.
type ParseError struct {
	Name string // post slug or file name
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse front-matter of %s: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
