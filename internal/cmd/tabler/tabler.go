package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

var usage = `Usage: tabler <var> <charset>

Produces a text_tables.go-compatible character table with the given
variable name. The charset is interpreted as a Go string literal, so
"\t\r\n" names the tab, carriage return and line feed characters.`

func table(chars string) ([4]uint64, error) {
	var vals [4]uint64
	for _, v := range chars {
		if v > 0xFF {
			return vals, fmt.Errorf("character %q does not fit in a character table", v)
		}
		bucket := uint(v) / 64
		pos := uint(v) % 64
		vals[bucket] = vals[bucket] | (1 << pos)
	}
	return vals, nil
}

func format(nam string, vals [4]uint64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "var %s = characterSet{\n", nam)
	for _, v := range vals {
		fmt.Fprintf(&b, "\t0x%16.016x,\n", v)
	}
	fmt.Fprintf(&b, "}\n")
	return b.String()
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	nam := os.Args[1]
	arg := os.Args[2]
	if unq, err := strconv.Unquote(`"` + arg + `"`); err == nil {
		arg = unq
	}
	vals, err := table(arg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(format(nam, vals))
}
