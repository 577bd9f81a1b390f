package main

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	cases := []struct {
		chars string
		want  [4]uint64
	}{
		{" \t\r\n", [4]uint64{0x0000000100002600, 0, 0, 0}},
		{" \t\r\n;", [4]uint64{0x0800000100002600, 0, 0, 0}},
		{" \t\r\n;,)}", [4]uint64{0x0800120100002600, 0x2000000000000000, 0, 0}},
	}
	for _, tc := range cases {
		got, err := table(tc.chars)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("table(%q) = %#v, want %#v", tc.chars, got, tc.want)
		}
	}
}

func TestTableRejectsWideCharacters(t *testing.T) {
	if _, err := table("世"); err == nil {
		t.Fatal("expected an error for a character above U+00FF")
	}
}

func TestFormat(t *testing.T) {
	out := format("whitespace", [4]uint64{0x2600, 0, 0, 0})
	if !strings.HasPrefix(out, "var whitespace = characterSet{\n\t0x0000000000002600,\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
