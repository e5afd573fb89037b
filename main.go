package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"go.odig.dev/odig/internal/highlight"
	"go.odig.dev/odig/internal/odinsrc"
	"go.odig.dev/odig/internal/text"
	"golang.org/x/term"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("odig: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugOut, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() {
		err = errors.Join(err, closeDebug())
	}()

	var debugLog *log.Logger
	if opts.Debug.Bool() {
		debugLog = log.New(debugOut, "debug: ", 0)
	}

	root, rootFound := odinsrc.ResolveRoot()
	if debugLog != nil {
		debugLog.Printf("installation root: %q (found=%v)", root, rootFound)
	}

	if opts.Root {
		return cmd.reportRoot(root, rootFound)
	}

	renderer := new(text.Renderer)
	if cmd.useColor(opts.Color) {
		renderer.Highlighter = new(highlight.Highlighter)
	}

	reporter := Reporter{
		Finder:         &odinsrc.Finder{Root: root, DebugLog: debugLog},
		Scanner:        new(odinsrc.Scanner),
		Renderer:       renderer,
		Stdout:         cmd.Stdout,
		IncludePrivate: opts.Private,
	}
	return reporter.Report(opts.Target)
}

// reportRoot handles -root:
// it prints the resolved installation root,
// or the searched candidates and a remediation hint.
func (cmd *mainCmd) reportRoot(root string, found bool) error {
	if found {
		if _, err := fmt.Fprintf(cmd.Stdout, "Odin root: %v\n", root); err != nil {
			return errtrace.Wrap(err)
		}
		_, err := fmt.Fprintf(cmd.Stdout, "Core library: %v (found)\n",
			filepath.Join(root, "core"))
		return errtrace.Wrap(err)
	}

	fmt.Fprintln(cmd.Stdout, "No Odin installation root found. Searched:")
	if os.Getenv(odinsrc.RootEnv) == "" {
		fmt.Fprintf(cmd.Stdout, "  - $%v (unset)\n", odinsrc.RootEnv)
	}
	for _, dir := range odinsrc.RootCandidates() {
		fmt.Fprintf(cmd.Stdout, "  - %v\n", dir)
	}
	_, err := fmt.Fprintf(cmd.Stdout,
		"Set %v to your Odin installation directory.\n", odinsrc.RootEnv)
	return errtrace.Wrap(err)
}

// useColor decides whether output should be colorized:
// always and never are forced, auto follows whether
// stdout is a terminal.
func (cmd *mainCmd) useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := cmd.Stdout.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}
