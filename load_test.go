package openstep

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"
	check "gopkg.in/check.v1"
)

func TestLoad(t *testing.T) { check.TestingT(t) }

type LoadSuite struct {
	dir string
}

var _ = check.Suite(&LoadSuite{})

func (s *LoadSuite) SetUpTest(c *check.C) {
	s.dir = c.MkDir()
}

func (s *LoadSuite) write(c *check.C, name string, data []byte) string {
	path := filepath.Join(s.dir, name)
	c.Assert(os.WriteFile(path, data, 0644), check.IsNil)
	return path
}

func encodeUTF16(c *check.C, text string, endianness unicode.Endianness, bom unicode.BOMPolicy) []byte {
	b, err := unicode.UTF16(endianness, bom).NewEncoder().Bytes([]byte(text))
	c.Assert(err, check.IsNil)
	return b
}

func (s *LoadSuite) TestReadFileSample(c *check.C) {
	doc, err := ReadFile("testdata/sample.pbxproj")
	c.Assert(err, check.IsNil)
	version, ok := doc.LookupString("objectVersion")
	c.Check(ok, check.Equals, true)
	c.Check(version, check.Equals, "46")
}

func (s *LoadSuite) TestReadFileMissing(c *check.C) {
	_, err := ReadFile(filepath.Join(s.dir, "missing.pbxproj"))
	c.Assert(err, check.NotNil)
	c.Check(errors.Is(err, os.ErrNotExist), check.Equals, true)
}

func (s *LoadSuite) TestReadFileSyntaxErrorNamesFile(c *check.C) {
	path := s.write(c, "bad.pbxproj", []byte("{ a b }"))
	_, err := ReadFile(path)
	c.Assert(err, check.ErrorMatches, ".*bad.pbxproj: openstep: expected '=' after dictionary key.*")

	var serr *SyntaxError
	c.Assert(errors.As(err, &serr), check.Equals, true)
	c.Check(serr.Kind, check.Equals, MissingEquals)
}

func (s *LoadSuite) TestUTF8ByteOrderMark(c *check.C) {
	doc, err := Read(bytes.NewReader([]byte("\xef\xbb\xbf// !$*UTF8*$!\n{ a = b; }")))
	c.Assert(err, check.IsNil)
	c.Check(doc, check.DeepEquals, Dictionary{"a": String("b")})
}

func (s *LoadSuite) TestUTF16WithByteOrderMark(c *check.C) {
	for _, e := range []unicode.Endianness{unicode.LittleEndian, unicode.BigEndian} {
		data := encodeUTF16(c, `{ greeting = "Hello, 世界"; }`, e, unicode.UseBOM)
		path := s.write(c, "utf16.pbxproj", data)

		doc, err := ReadFile(path)
		c.Assert(err, check.IsNil)
		c.Check(doc, check.DeepEquals, Dictionary{"greeting": String("Hello, 世界")})
	}
}

func (s *LoadSuite) TestUTF16WithoutByteOrderMark(c *check.C) {
	data := encodeUTF16(c, `{ a = b; }`, unicode.LittleEndian, unicode.IgnoreBOM)

	enc, err := LookupEncoding("UTF-16LE")
	c.Assert(err, check.IsNil)
	doc, err := Read(bytes.NewReader(data), Encoding(enc))
	c.Assert(err, check.IsNil)
	c.Check(doc, check.DeepEquals, Dictionary{"a": String("b")})
}

func (s *LoadSuite) TestLookupEncoding(c *check.C) {
	for _, name := range []string{"utf-8", "UTF-16", "macintosh", "iso-8859-1"} {
		enc, err := LookupEncoding(name)
		c.Check(err, check.IsNil, check.Commentf("encoding %s", name))
		c.Check(enc, check.NotNil, check.Commentf("encoding %s", name))
	}

	_, err := LookupEncoding("not-an-encoding")
	c.Check(err, check.ErrorMatches, `openstep: unknown encoding "not-an-encoding".*`)
}

func (s *LoadSuite) TestDecoderReadsWholeStream(c *check.C) {
	var v struct {
		A string `openstep:"a"`
	}
	err := NewDecoder(bytes.NewReader([]byte("// header\n{ a = \"quoted value\"; }"))).Decode(&v)
	c.Assert(err, check.IsNil)
	c.Check(v.A, check.Equals, "quoted value")
}
