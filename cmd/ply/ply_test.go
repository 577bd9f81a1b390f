package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"howett.net/openstep"
)

const sample = "../../testdata/sample.pbxproj"

func TestWalkKeyPath(t *testing.T) {
	doc, err := openstep.DecodeString(`{ a = { b = (x, { c = y; }); }; s = str; }`)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		path string
		want openstep.Value
	}{
		{"/a/b/0", openstep.String("x")},
		{"a/b/1/c", openstep.String("y")},
		{"//a//b/0/", openstep.String("x")},
		{"/s", openstep.String("str")},
	}
	for _, tc := range cases {
		got, err := walkKeyPath(doc, tc.path)
		if err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.path, tc.want, got)
		}
	}

	if got, err := walkKeyPath(doc, "/"); err != nil || got.Kind() != openstep.DictionaryKind {
		t.Errorf("expected / to select the root, got %v (%v)", got, err)
	}

	for _, bad := range []string{"/missing", "/a/b/2", "/a/b/-1", "/a/b/x", "/s/deeper"} {
		if _, err := walkKeyPath(doc, bad); err == nil {
			t.Errorf("%s: expected an error", bad)
		}
	}
}

func runToString(t *testing.T, o *options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := run(o, &buf, zap.NewNop().Sugar()); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func sampleOptions(convert, keypath string) *options {
	o := &options{Convert: convert, Keypath: keypath, MaxDepth: openstep.DefaultMaxDepth}
	o.Args.Files = []string{sample}
	return o
}

func TestRunJSON(t *testing.T) {
	out := runToString(t, sampleOptions("json", "/objects/29B97314FDCFA39411CA2CEA/children"))

	var children []string
	if err := json.Unmarshal([]byte(out), &children); err != nil {
		t.Fatal(err)
	}
	if len(children) != 3 || children[0] != "1D3623250D0F684500981E51" {
		t.Errorf("unexpected children %v", children)
	}
}

func TestRunYAML(t *testing.T) {
	out := runToString(t, sampleOptions("yaml", "/objects/C01FCF4F08A954540054247B"))

	var config struct {
		Isa           string                 `yaml:"isa"`
		Name          string                 `yaml:"name"`
		BuildSettings map[string]interface{} `yaml:"buildSettings"`
	}
	if err := yaml.Unmarshal([]byte(out), &config); err != nil {
		t.Fatal(err)
	}
	if config.Isa != "XCBuildConfiguration" || config.Name != "Debug" {
		t.Errorf("unexpected configuration %+v", config)
	}
	if config.BuildSettings["SDKROOT"] != "iphoneos" {
		t.Errorf("unexpected build settings %v", config.BuildSettings)
	}
}

func TestRunPretty(t *testing.T) {
	out := runToString(t, sampleOptions("pretty", "/rootObject"))
	if !strings.Contains(out, "29B97313FDCFA39411CA2CEA") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunOutputFile(t *testing.T) {
	o := sampleOptions("json", "/archiveVersion")
	o.Output = filepath.Join(t.TempDir(), "out.json")
	if out := runToString(t, o); out != "" {
		t.Errorf("expected nothing on stdout, got %q", out)
	}
	b, err := os.ReadFile(o.Output)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(b)) != `"1"` {
		t.Errorf("unexpected file contents %q", b)
	}
}

func TestRunErrors(t *testing.T) {
	log := zap.NewNop().Sugar()

	o := sampleOptions("json", "/nope")
	if err := run(o, &bytes.Buffer{}, log); err == nil {
		t.Error("expected an error for a missing key")
	}

	o = sampleOptions("json", "/")
	o.Encoding = "no-such-encoding"
	if err := run(o, &bytes.Buffer{}, log); err == nil {
		t.Error("expected an error for an unknown encoding")
	}

	o = sampleOptions("json", "/")
	o.MaxDepth = 2
	if err := run(o, &bytes.Buffer{}, log); err == nil {
		t.Error("expected an error for a too-small nesting limit")
	}

	o = sampleOptions("xml", "/")
	if err := run(o, &bytes.Buffer{}, log); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		log, err := newLogger(verbose)
		if err != nil {
			t.Fatal(err)
		}
		if got := log.Desugar().Core().Enabled(zap.DebugLevel); got != verbose {
			t.Errorf("verbose=%v: debug enabled=%v", verbose, got)
		}
	}
}
