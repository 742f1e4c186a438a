// Package qoierr defines the error taxonomy shared by the qoi encoder and
// decoder, in the style of the standard library's image/png FormatError and
// UnsupportedError: a small set of named kinds a caller can test for with
// this package's Is helper, each carrying a human-readable detail string.
package qoierr

import (
	"errors"
	"fmt"
)

// Kind identifies one of the qoi codec's failure modes.
type Kind int

const (
	BadMagic Kind = iota
	BadDimensions
	BadChannels
	BadColorspace
	UnexpectedEOF
	BadTerminator
	TrailingGarbage
	ShortInput
	OutputOversized
)

func (k Kind) String() string {
	switch k {
	case BadMagic:
		return "bad magic"
	case BadDimensions:
		return "bad dimensions"
	case BadChannels:
		return "bad channels"
	case BadColorspace:
		return "bad colorspace"
	case UnexpectedEOF:
		return "unexpected eof"
	case BadTerminator:
		return "bad terminator"
	case TrailingGarbage:
		return "trailing garbage"
	case ShortInput:
		return "short input"
	case OutputOversized:
		return "output oversized"
	default:
		return "unknown"
	}
}

// Error is a qoi codec error of a known Kind.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "qoi: " + e.Kind.String()
	}
	return "qoi: " + e.Kind.String() + ": " + e.Msg
}

// New builds an *Error of the given kind with a formatted detail message.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a qoi codec error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
