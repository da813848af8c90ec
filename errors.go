package warp

import (
	"errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

// invalidParameter is raised before any image is touched
// and aborts the whole batch.
type invalidParameter struct {
	message string
	cause   error
}

// NewInvalidParameter creates an "invalid parameter" error from the given
// format string.
func NewInvalidParameter(msg string, v ...interface{}) error {
	return invalidParameter{message: fmt.Sprintf(msg, v...)}
}

func asInvalidParameter(err error, msg string, v ...interface{}) error {
	return invalidParameter{fmt.Sprintf(msg, v...), err}
}

func (e invalidParameter) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid parameter: %v: %v", e.message, e.cause)
	}
	return "invalid parameter: " + e.message
}

func (e invalidParameter) Unwrap() error {
	return e.cause
}

// IsInvalidParameter checks if the given error is an "invalid parameter"
// error.
func IsInvalidParameter(err error) bool {
	var target invalidParameter
	return errors.As(err, &target)
}

// singularTransform means the transform for one image has no inverse.
type singularTransform struct {
	path  string
	cause error
}

// NewSingularTransform creates a "singular transform" error for the image
// at path.
func NewSingularTransform(path string, cause error) error {
	return singularTransform{path, cause}
}

func (e singularTransform) Error() string {
	return fmt.Sprintf("cannot transform %q: %v", e.path, e.cause)
}

func (e singularTransform) Unwrap() error {
	return e.cause
}

// IsSingularTransform checks if the given error is a "singular transform"
// error.
func IsSingularTransform(err error) bool {
	var target singularTransform
	return errors.As(err, &target)
}

type loadFailure struct {
	path  string
	cause error
}

// NewLoadFailure creates an error for an image that could not be read.
func NewLoadFailure(path string, cause error) error {
	return loadFailure{path, cause}
}

func (e loadFailure) Error() string {
	return fmt.Sprintf("cannot load %q: %v", e.path, e.cause)
}

func (e loadFailure) Unwrap() error {
	return e.cause
}

// IsLoadFailure checks if the given error is an image load error.
func IsLoadFailure(err error) bool {
	var target loadFailure
	return errors.As(err, &target)
}

type saveFailure struct {
	path  string
	cause error
}

// NewSaveFailure creates an error for an image that could not be written.
func NewSaveFailure(path string, cause error) error {
	return saveFailure{path, cause}
}

func (e saveFailure) Error() string {
	return fmt.Sprintf("cannot save %q: %v", e.path, e.cause)
}

func (e saveFailure) Unwrap() error {
	return e.cause
}

// IsSaveFailure checks if the given error is an image save error.
func IsSaveFailure(err error) bool {
	var target saveFailure
	return errors.As(err, &target)
}
