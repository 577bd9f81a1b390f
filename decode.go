package openstep

import (
	"bytes"
	"io"
	"reflect"
	"runtime"
)

// DecodeString decodes a complete document. The root of every document is a Dictionary.
// On error no partial result is returned; syntax errors are *SyntaxError.
func DecodeString(text string, opts ...Option) (Dictionary, error) {
	o := &parseOptions{}
	if err := applyOptions(o, opts); err != nil {
		return nil, err
	}
	return newTextParser(text, o.maxDepth).parseDocument()
}

// Decode decodes a complete UTF-8 document. It is equivalent to
// DecodeString(string(data), opts...).
func Decode(data []byte, opts ...Option) (Dictionary, error) {
	return DecodeString(string(data), opts...)
}

// A Decoder reads a document from an input stream and stores it in Go values.
type Decoder struct {
	reader io.Reader
	opts   []Option
	lax    bool
}

// NewDecoder returns a Decoder that reads from r. The whole stream is read on the first
// call to Decode.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{reader: r, opts: opts}
}

// Decode reads the document and stores it in the value pointed to by v; see Unmarshal
// for how values are converted.
func (p *Decoder) Decode(v interface{}) error {
	o := &readOptions{}
	if err := applyOptions(o, p.opts); err != nil {
		return err
	}
	p.lax = o.lax

	dict, err := o.read(p.reader)
	if err != nil {
		return err
	}
	return p.unmarshalValue(dict, v)
}

func (p *Decoder) unmarshalValue(pval Value, v interface{}) (err error) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return &InvalidUnmarshalError{reflect.TypeOf(v)}
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(r)
			}
			err = r.(error)
		}
	}()
	p.unmarshal(pval, val)
	return
}

// Unmarshal decodes data and stores the result in the value pointed to by v.
//
// Dictionaries are stored in structs (matching exported fields by name or by an
// `openstep:"name"` tag), in maps with string keys, or in an empty interface as
// map[string]interface{}. Arrays are stored in slices, arrays or an empty interface as
// []interface{}. Strings are stored in strings, in encoding.TextUnmarshalers, or, when the
// Lax option is set, in numeric and boolean values. A field of type Value or RawValue
// receives the decoded tree itself.
func Unmarshal(data []byte, v interface{}, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}
