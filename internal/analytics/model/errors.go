package model

import "errors"

var (
	// ErrInvalidYear indicates the year parameter is not a four-digit year.
	ErrInvalidYear = errors.New("invalid session year")
)
