package openstep

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LookupEncoding returns the encoding registered under an IANA name or alias, such as
// "utf-8", "utf-16", "macintosh" or "iso-8859-1".
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("openstep: unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("openstep: encoding %q is not supported", name)
	}
	return enc, nil
}

// readText reads all of r and transcodes it to UTF-8. A byte order mark, if present,
// selects UTF-8 or UTF-16 regardless of enc, and is removed.
func readText(r io.Reader, enc encoding.Encoding) (string, error) {
	if enc == nil {
		enc = unicode.UTF8
	}
	dec := unicode.BOMOverride(enc.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (o *readOptions) read(r io.Reader) (Dictionary, error) {
	text, err := readText(r, o.encoding)
	if err != nil {
		return nil, err
	}
	return newTextParser(text, o.maxDepth).parseDocument()
}

// Read reads an entire document from r and decodes it.
func Read(r io.Reader, opts ...Option) (Dictionary, error) {
	o := &readOptions{}
	if err := applyOptions(o, opts); err != nil {
		return nil, err
	}
	return o.read(r)
}

// ReadFile decodes the named file.
func ReadFile(name string, opts ...Option) (Dictionary, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dict, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return dict, nil
}
