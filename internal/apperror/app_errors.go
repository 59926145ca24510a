package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrMissingElement      = errors.New("missing element")
	ErrMalformedColor      = errors.New("malformed color declaration")
	ErrInvalidChannelValue = errors.New("invalid color channel value")
	ErrOutOfBounds         = errors.New("coordinate out of bounds")
	ErrInvalidSelector     = errors.New("invalid selector")
	ErrGameNotFound        = errors.New("game not found")
)

// MissingElementError - an expected board, row, tile or attribute is absent.
type MissingElementError struct {
	Context string
}

func (that *MissingElementError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingElement, that.Context)
}

func (that *MissingElementError) Unwrap() error {
	return ErrMissingElement
}

// MalformedColorError - a style attribute does not carry a background-color rgb declaration.
type MalformedColorError struct {
	RawText string
}

func (that *MalformedColorError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMalformedColor, that.RawText)
}

func (that *MalformedColorError) Unwrap() error {
	return ErrMalformedColor
}

// InvalidChannelValueError - a channel is not an integer in [0, 255].
type InvalidChannelValueError struct {
	RawText string
}

func (that *InvalidChannelValueError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidChannelValue, that.RawText)
}

func (that *InvalidChannelValueError) Unwrap() error {
	return ErrInvalidChannelValue
}

type OutOfBoundsError struct {
	Column int
	Row    int
}

func (that *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: (%d, %d)", ErrOutOfBounds, that.Column, that.Row)
}

func (that *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
