package workoutlog

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned for any workout log that does not follow the
// "#Category\n*Name\nN sets\nM reps\nW kg" grammar.
var ErrInvalidFormat = errors.New("invalid workout log format")

// ErrorKind narrows down why a log was rejected.
type ErrorKind string

const (
	KindMissingMarker   ErrorKind = "missing_marker"
	KindMissingField    ErrorKind = "missing_field"
	KindMalformedNumber ErrorKind = "malformed_number"
)

// ParseError describes the first violation found in a submitted log.
// It always matches ErrInvalidFormat with errors.Is.
type ParseError struct {
	Kind  ErrorKind
	Entry int // 1-based index of the offending entry
	Line  string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("entry %d: %s (%q)", e.Entry, e.Msg, e.Line)
	}
	return fmt.Sprintf("entry %d: %s", e.Entry, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidFormat
}
