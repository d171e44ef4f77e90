package model

import "errors"

var (
	// ErrMissingLegislator indicates a call record without a legislator name.
	ErrMissingLegislator = errors.New("legislator_name is required")
	// ErrInvalidOutcome indicates an unrecognized call outcome label.
	ErrInvalidOutcome = errors.New("invalid call outcome")
)
