package openstep

import (
	"strings"
	"unicode/utf8"
)

// textBase is an immutable view of the input. Positions are byte offsets; every special
// character in the grammar is ASCII, so byte-wise scanning never splits a UTF-8 sequence
// at a point that matters.
type textBase struct {
	input string
}

func (p textBase) eof(pos int) bool {
	return pos >= len(p.input)
}

// is reports whether the byte at pos is ch. It is false past the end of input.
func (p textBase) is(pos int, ch byte) bool {
	return pos < len(p.input) && p.input[pos] == ch
}

func (p textBase) hasPrefixAt(pos int, prefix string) bool {
	return pos <= len(p.input) && strings.HasPrefix(p.input[pos:], prefix)
}

// scanUntil returns the position of the next ch at or after pos, or len(input).
func (p textBase) scanUntil(pos int, ch byte) int {
	if x := strings.IndexByte(p.input[pos:], ch); x >= 0 {
		return pos + x
	}
	return len(p.input)
}

func (p textBase) scanCharactersInSet(pos int, ch *characterSet) int {
	for pos < len(p.input) && ch.Contains(p.input[pos]) {
		pos++
	}
	return pos
}

func (p textBase) scanCharactersNotInSet(pos int, ch *characterSet) int {
	for pos < len(p.input) && !ch.Contains(p.input[pos]) {
		pos++
	}
	return pos
}

// error builds a SyntaxError for the character at pos. Any expectation that runs into
// the end of input is reported as UnexpectedEndOfInput, whatever was expected.
func (p textBase) error(kind ErrorKind, pos int) *SyntaxError {
	if pos > len(p.input) {
		pos = len(p.input)
	}
	e := &SyntaxError{Kind: kind, Offset: pos}
	if pos == len(p.input) {
		e.Kind = UnexpectedEndOfInput
		e.EOF = true
	} else {
		e.Char, _ = utf8.DecodeRuneInString(p.input[pos:])
	}
	e.Line = strings.Count(p.input[:pos], "\n") + 1
	e.Column = utf8.RuneCountInString(p.input[strings.LastIndex(p.input[:pos], "\n")+1:pos]) + 1
	return e
}
