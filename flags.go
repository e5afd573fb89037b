package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3"
	"go.odig.dev/odig/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for odig.
type params struct {
	version bool
	help    Help

	Root    bool
	Private bool
	Color   string
	Debug   flagvalue.FileSwitch

	// Target is the package or package.symbol to document.
	// Empty for -root invocations.
	Target string
}

// cliParser parses the command line arguments for odig.
// Flags may also be supplied through ODIG_* environment variables.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("odig", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Lookup behavior:
	flag.BoolVar(&p.Private, "private", false, "")
	flag.StringVar(&p.Color, "color", "auto", "")

	// Toolchain:
	flag.BoolVar(&p.Root, "root", false, "")
	flag.BoolVar(&p.Root, "r", false, "")

	// Program-level:
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.BoolVar(&p.version, "v", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("ODIG")); err != nil {
		return nil, err
	}
	args = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "odig", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	switch p.Color {
	case "auto", "always", "never":
	default:
		fmt.Fprintf(cmd.Stderr,
			"Invalid value %q for -color: valid values are auto, always, never.\n", p.Color)
		return nil, errInvalidArguments
	}

	if p.Root {
		// -root is a standalone diagnostic; targets are ignored.
		return p, nil
	}

	switch len(args) {
	case 0:
		// A bare invocation prints usage and succeeds.
		UsageHelp.Write(cmd.Stdout)
		return nil, errHelp
	case 1:
		p.Target = args[0]
	default:
		fmt.Fprintln(cmd.Stderr, "Please provide a single package or symbol.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}
