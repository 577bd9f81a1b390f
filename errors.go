package openstep

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrorKind classifies a SyntaxError.
type ErrorKind int

const (
	// A dictionary did not start with '{'.
	MissingOpenBrace ErrorKind = iota + 1
	// An array did not start with '('.
	MissingOpenParen
	// A dictionary key was not followed by '='.
	MissingEquals
	// An entry was followed by neither its separator (';' or ',') nor the closing delimiter.
	MissingSeparator
	// A quoted literal was not closed before the end of input.
	UnterminatedQuotedString
	// A /* comment was not closed before the end of input.
	UnterminatedComment
	// The input ended where more was expected.
	UnexpectedEndOfInput
	// Containers were nested deeper than the configured maximum.
	NestingTooDeep
)

var errorKindNames = map[ErrorKind]string{
	MissingOpenBrace:         "expected '{' at start of dictionary",
	MissingOpenParen:         "expected '(' at start of array",
	MissingEquals:            "expected '=' after dictionary key",
	MissingSeparator:         "expected separator after value",
	UnterminatedQuotedString: "unterminated quoted string",
	UnterminatedComment:      "unterminated comment",
	UnexpectedEndOfInput:     "unexpected end of input",
	NestingTooDeep:           "containers nested too deeply",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SyntaxError describes malformed input. Offset is a byte offset into the decoded text;
// Line and Column are 1-based, with Column counted in characters.
type SyntaxError struct {
	Kind   ErrorKind
	Offset int
	Line   int
	Column int
	// Char is the character found at Offset. It is meaningless when EOF is set.
	Char rune
	EOF  bool
}

func (e *SyntaxError) Error() string {
	found := "end of input"
	if !e.EOF {
		found = fmt.Sprintf("%q", e.Char)
	}
	return fmt.Sprintf("openstep: %s at line %d character %d (found %s)", e.Kind, e.Line, e.Column, found)
}

// An UnmarshalTypeError describes a value that could not be stored in a Go value of a
// specific type.
type UnmarshalTypeError struct {
	Kind Kind
	Type reflect.Type
}

func (e *UnmarshalTypeError) Error() string {
	return fmt.Sprintf("openstep: type mismatch: tried to decode %v into value of type `%v'", e.Kind, e.Type)
}

// ErrOptionUnsupported is returned when an Option is passed to an operation it does not
// apply to.
var ErrOptionUnsupported = errors.New("openstep: this option is unsupported for this operation")
