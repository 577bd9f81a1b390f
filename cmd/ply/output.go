package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kr/pretty"
	"gopkg.in/yaml.v2"

	"howett.net/openstep"
)

type writer interface {
	write(w io.Writer, v openstep.Value) error
}

type jsonWriter struct {
	indent bool
}

func (j jsonWriter) write(w io.Writer, v openstep.Value) error {
	enc := json.NewEncoder(w)
	if j.indent {
		enc.SetIndent("", "\t")
	}
	return enc.Encode(openstep.Interface(v))
}

type yamlWriter struct{}

func (yamlWriter) write(w io.Writer, v openstep.Value) error {
	b, err := yaml.Marshal(openstep.Interface(v))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

type prettyWriter struct{}

func (prettyWriter) write(w io.Writer, v openstep.Value) error {
	_, err := fmt.Fprintf(w, "%# v\n", pretty.Formatter(v))
	return err
}

func newWriter(format string, indent bool) (writer, error) {
	switch format {
	case "json", "":
		return jsonWriter{indent: indent}, nil
	case "yaml":
		return yamlWriter{}, nil
	case "pretty":
		return prettyWriter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %s", format)
}
