package util

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady is returned when analytics are requested before the
	// session dataset reached the ready state.
	ErrNotReady = errors.New("session data not ready")
	// ErrInsufficientData is returned when an analysis cannot produce a
	// meaningful result from the available laps or samples.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrNoOverlap is returned when two laps share no common distance range.
	ErrNoOverlap = errors.New("no overlapping distance range")
	// ErrInvalidRange is returned for malformed distance or lap ranges.
	ErrInvalidRange = errors.New("invalid range")
	// ErrUnknownDriver is returned when a requested driver has no laps.
	ErrUnknownDriver = errors.New("unknown driver")
)

// AlignmentError describes why two laps could not be aligned.
type AlignmentError struct {
	DriverRef string
	DriverCmp string
	Reason    string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("cannot align %s vs %s: %s", e.DriverRef, e.DriverCmp, e.Reason)
}

func (e *AlignmentError) Unwrap() error { return ErrNoOverlap }

// DataError wraps ErrInsufficientData with context about the failing analysis.
type DataError struct {
	Op     string
	Detail string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func (e *DataError) Unwrap() error { return ErrInsufficientData }
