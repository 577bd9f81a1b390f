package openstep

import (
	"errors"

	"golang.org/x/text/encoding"
)

type optionReceiver interface {
	setMaxDepth(int) error
	setLax(bool) error
	setEncoding(encoding.Encoding) error
}

// Option configures decoding. Options are applied in order; the last one wins.
type Option func(optionReceiver) error

// MaxDepth limits how deeply containers may nest. Input nested deeper fails with a
// NestingTooDeep SyntaxError.
func MaxDepth(n int) Option {
	return Option(func(o optionReceiver) error {
		if n <= 0 {
			return errors.New("openstep: maximum depth must be positive")
		}
		return o.setMaxDepth(n)
	})
}

// Lax allows Unmarshal to store strings in integer, floating-point and boolean values by
// parsing them.
func Lax(lax bool) Option {
	return Option(func(o optionReceiver) error {
		return o.setLax(lax)
	})
}

// Encoding selects the character encoding of byte input. By default input is UTF-8; in
// either case a byte order mark takes precedence.
func Encoding(enc encoding.Encoding) Option {
	return Option(func(o optionReceiver) error {
		if enc == nil {
			return errors.New("openstep: nil encoding")
		}
		return o.setEncoding(enc)
	})
}

// parseOptions configures DecodeString, which only parses text.
type parseOptions struct {
	maxDepth int
}

func (o *parseOptions) setMaxDepth(n int) error {
	o.maxDepth = n
	return nil
}

func (o *parseOptions) setLax(bool) error {
	return ErrOptionUnsupported
}

func (o *parseOptions) setEncoding(encoding.Encoding) error {
	return ErrOptionUnsupported
}

// readOptions configures everything that starts from bytes.
type readOptions struct {
	parseOptions
	lax      bool
	encoding encoding.Encoding
}

func (o *readOptions) setLax(lax bool) error {
	o.lax = lax
	return nil
}

func (o *readOptions) setEncoding(enc encoding.Encoding) error {
	o.encoding = enc
	return nil
}

func applyOptions(o optionReceiver, opts []Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}
