package model

import "errors"

var (
	// ErrMissingBillName indicates a bill record without an identifier.
	ErrMissingBillName = errors.New("bill record has no billName")
	// ErrYearNotFound indicates the upstream API has no data for the
	// requested session year.
	ErrYearNotFound = errors.New("session year not found upstream")
)
