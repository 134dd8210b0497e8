package simplesvg

import "errors"

var (
	// ErrAbsentValue is the panic value of Optional.MustGet on an absent value.
	ErrAbsentValue = errors.New("simplesvg: access to absent optional value")

	errOutOfRange = errors.New("index out of range")
)
