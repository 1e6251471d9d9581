package template

import (
	"errors"
	"fmt"

	"github.com/imamik/ghlabels/internal/label"
)

// ErrLoad matches every template loading failure.
var ErrLoad = errors.New("template load failed")

// ErrNotExist is wrapped when the template source does not exist.
var ErrNotExist = errors.New("template does not exist")

// LoadError describes why a template could not be loaded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes every LoadError match ErrLoad.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// InvalidLabelError reports the first invalid record of a template.
type InvalidLabelError struct {
	// Index is the zero-based position of the record in the template.
	Index int
	Label label.Label
	Err   error
}

func (e *InvalidLabelError) Error() string {
	return e.Err.Error()
}

func (e *InvalidLabelError) Unwrap() error {
	return e.Err
}

func loadError(source string, format string, args ...any) *LoadError {
	return &LoadError{Source: source, Err: fmt.Errorf(format, args...)}
}
