// Command ply reads OpenStep property lists (such as Xcode project files) and prints them,
// or a part of them selected by key path, as JSON, YAML or Go syntax.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"howett.net/openstep"
)

type options struct {
	Convert  string `short:"c" long:"convert" description:"output format" choice:"json" choice:"yaml" choice:"pretty" default:"json"`
	Keypath  string `short:"k" long:"key" description:"print only the value at this /-separated key path" default:"/"`
	Output   string `short:"o" long:"out" description:"output filename (default: standard output)"`
	Indent   bool   `short:"I" long:"indent" description:"indent JSON output"`
	Encoding string `short:"e" long:"encoding" description:"IANA name of the input encoding (default: UTF-8, or as given by a byte order mark)"`
	MaxDepth int    `long:"max-depth" description:"maximum container nesting" default:"512"`
	Verbose  bool   `short:"v" long:"verbose" description:"log what is being done"`

	Args struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func (o *options) decodeOptions() ([]openstep.Option, error) {
	opts := []openstep.Option{openstep.MaxDepth(o.MaxDepth)}
	if o.Encoding != "" {
		enc, err := openstep.LookupEncoding(o.Encoding)
		if err != nil {
			return nil, err
		}
		opts = append(opts, openstep.Encoding(enc))
	}
	return opts, nil
}

func run(o *options, stdout io.Writer, log *zap.SugaredLogger) error {
	decodeOpts, err := o.decodeOptions()
	if err != nil {
		return err
	}

	out := stdout
	if o.Output != "" {
		f, err := os.Create(o.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w, err := newWriter(o.Convert, o.Indent)
	if err != nil {
		return err
	}

	for _, name := range o.Args.Files {
		log.Debugw("decoding", "file", name, "encoding", o.Encoding, "maxDepth", o.MaxDepth)
		doc, err := openstep.ReadFile(name, decodeOpts...)
		if err != nil {
			return err
		}
		log.Debugw("decoded", "file", name, "keys", len(doc))

		val, err := walkKeyPath(doc, o.Keypath)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		log.Debugw("selected", "file", name, "keypath", o.Keypath, "type", val.TypeName())

		if err := w.write(out, val); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] FILE..."
	if _, err := parser.Parse(); err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	log, err := newLogger(opts.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(&opts, os.Stdout, log); err != nil {
		log.Debugw("failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
