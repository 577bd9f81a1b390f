package openstep

import (
	"strings"
)

// DefaultMaxDepth is the container nesting limit used when no MaxDepth option is given.
const DefaultMaxDepth = 512

var literalEscapes = map[byte]byte{
	'"':  '"',
	'\'': '\'',
	'0':  0,
	'\\': '\\',
	'n':  '\n',
	't':  '\t',
}

// textParser is a recursive-descent parser over an immutable input. It holds no cursor:
// every method takes a position and returns the position following what it consumed, so
// a single textParser may be used from many goroutines at once.
type textParser struct {
	textBase
	maxDepth int
}

func newTextParser(input string, maxDepth int) textParser {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return textParser{textBase: textBase{input: input}, maxDepth: maxDepth}
}

// parseDocument parses the root dictionary. A document may open with a single // comment,
// which runs until the first '{' (wherever it is; newlines are not special). Anything
// after the root dictionary is ignored.
func (p textParser) parseDocument() (Dictionary, error) {
	pos := 0
	if p.hasPrefixAt(0, "//") {
		pos = p.scanUntil(0, '{')
		if p.eof(pos) {
			return nil, p.error(UnexpectedEndOfInput, pos)
		}
	} else {
		var err error
		if pos, err = p.skipPadding(0); err != nil {
			return nil, err
		}
	}

	dict, _, err := p.parseDictionary(pos, 0)
	if err != nil {
		return nil, err
	}
	return dict, nil
}

// skipPadding skips whitespace and /* */ comments, in any number and any order.
func (p textParser) skipPadding(pos int) (int, error) {
	for {
		pos = p.scanCharactersInSet(pos, &whitespace)
		if !p.hasPrefixAt(pos, "/*") {
			return pos, nil
		}
		end := strings.Index(p.input[pos+2:], "*/")
		if end < 0 {
			return pos, p.error(UnterminatedComment, pos)
		}
		pos += 2 + end + 2
	}
}

// parseKey reads a dictionary key. Keys end at ';' or whitespace only. A quoted key
// loses one leading and one trailing quote and nothing else: escapes are not decoded.
func (p textParser) parseKey(pos int) (string, int, error) {
	pos, err := p.skipPadding(pos)
	if err != nil {
		return "", pos, err
	}

	start := pos
	pos = p.scanCharactersNotInSet(pos, &keyTerminators)
	key := strings.TrimPrefix(p.input[start:pos], `"`)
	key = strings.TrimSuffix(key, `"`)

	pos, err = p.skipPadding(pos)
	return key, pos, err
}

func (p textParser) parseLiteral(pos int) (String, int, error) {
	pos, err := p.skipPadding(pos)
	if err != nil {
		return "", pos, err
	}

	var s string
	if p.is(pos, '"') {
		if s, pos, err = p.parseQuotedString(pos); err != nil {
			return "", pos, err
		}
	} else {
		// an unquoted literal stops at whitespace or at anything that closes an entry.
		start := pos
		pos = p.scanCharactersNotInSet(pos, &literalTerminators)
		s = p.input[start:pos]
	}

	pos, err = p.skipPadding(pos)
	return String(s), pos, err
}

// parseQuotedString decodes the quoted string whose opening quote is at open. Escapes are
// decoded in a single left-to-right pass; unknown escapes are kept as written.
func (p textParser) parseQuotedString(open int) (string, int, error) {
	var b strings.Builder
	pos := open + 1
	start := pos
	for pos < len(p.input) {
		switch p.input[pos] {
		case '"':
			b.WriteString(p.input[start:pos])
			return b.String(), pos + 1, nil
		case '\\':
			if pos+1 >= len(p.input) {
				return "", pos, p.error(UnterminatedQuotedString, open)
			}
			b.WriteString(p.input[start:pos])
			if c, ok := literalEscapes[p.input[pos+1]]; ok {
				b.WriteByte(c)
			} else {
				b.WriteString(p.input[pos : pos+2])
			}
			pos += 2
			start = pos
			continue
		}
		pos++
	}
	return "", pos, p.error(UnterminatedQuotedString, open)
}

// parseDictionary parses '{' (key '=' value (';' | before '}'))* '}'. depth is the number
// of containers enclosing this one.
func (p textParser) parseDictionary(pos int, depth int) (Dictionary, int, error) {
	if !p.is(pos, '{') {
		return nil, pos, p.error(MissingOpenBrace, pos)
	}
	if depth >= p.maxDepth {
		return nil, pos, p.error(NestingTooDeep, pos)
	}

	pos, err := p.skipPadding(pos + 1)
	if err != nil {
		return nil, pos, err
	}

	dict := make(Dictionary)
	for !p.is(pos, '}') {
		if p.eof(pos) {
			return nil, pos, p.error(UnexpectedEndOfInput, pos)
		}

		var key string
		if key, pos, err = p.parseKey(pos); err != nil {
			return nil, pos, err
		}
		if !p.is(pos, '=') {
			return nil, pos, p.error(MissingEquals, pos)
		}
		if pos, err = p.skipPadding(pos + 1); err != nil {
			return nil, pos, err
		}

		var val Value
		if val, pos, err = p.parseValue(pos, depth+1); err != nil {
			return nil, pos, err
		}
		dict[key] = val

		if p.is(pos, '}') {
			break
		}
		if !p.is(pos, ';') {
			return nil, pos, p.error(MissingSeparator, pos)
		}
		if pos, err = p.skipPadding(pos + 1); err != nil {
			return nil, pos, err
		}
	}

	pos, err = p.skipPadding(pos + 1)
	if err != nil {
		return nil, pos, err
	}
	return dict, pos, nil
}

// parseArray parses '(' (value (',' | before ')'))* ')'.
func (p textParser) parseArray(pos int, depth int) (Array, int, error) {
	if !p.is(pos, '(') {
		return nil, pos, p.error(MissingOpenParen, pos)
	}
	if depth >= p.maxDepth {
		return nil, pos, p.error(NestingTooDeep, pos)
	}

	pos, err := p.skipPadding(pos + 1)
	if err != nil {
		return nil, pos, err
	}

	values := make(Array, 0, 8)
	for !p.is(pos, ')') {
		if p.eof(pos) {
			return nil, pos, p.error(UnexpectedEndOfInput, pos)
		}

		var val Value
		if val, pos, err = p.parseValue(pos, depth+1); err != nil {
			return nil, pos, err
		}
		values = append(values, val)

		if p.is(pos, ')') {
			break
		}
		if !p.is(pos, ',') {
			return nil, pos, p.error(MissingSeparator, pos)
		}
		if pos, err = p.skipPadding(pos + 1); err != nil {
			return nil, pos, err
		}
	}

	pos, err = p.skipPadding(pos + 1)
	if err != nil {
		return nil, pos, err
	}
	return values, pos, nil
}

func (p textParser) parseValue(pos int, depth int) (Value, int, error) {
	switch {
	case p.is(pos, '{'):
		return p.parseDictionary(pos, depth)
	case p.is(pos, '('):
		return p.parseArray(pos, depth)
	default:
		return p.parseLiteral(pos)
	}
}
