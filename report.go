package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"braces.dev/errtrace"
	"go.odig.dev/odig/internal/odindoc"
	"go.odig.dev/odig/internal/odinsrc"
	"go.odig.dev/odig/internal/text"
)

// Finder locates the source files for a package reference.
type Finder interface {
	Find(ref string) (*odinsrc.PackageRef, bool)
}

var _ Finder = (*odinsrc.Finder)(nil)

// Scanner extracts documented declarations from one source file.
type Scanner interface {
	ScanFile(path string) ([]odinsrc.Decl, error)
}

var _ Scanner = (*odinsrc.Scanner)(nil)

// Renderer writes the final textual report.
type Renderer interface {
	RenderPackage(io.Writer, *odindoc.Package) error
	RenderSymbol(io.Writer, odinsrc.Decl) error
}

var _ Renderer = (*text.Renderer)(nil)

// Reporter documents a user-specified package or symbol.
//
// In terms of code organization,
// Reporter's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Reporter struct {
	Finder   Finder
	Scanner  Scanner
	Renderer Renderer
	Stdout   io.Writer

	// IncludePrivate lists private declarations
	// in whole-package reports.
	IncludePrivate bool
}

// Report documents the given target,
// either a whole package or a single symbol within one.
//
// Missing roots, missing symbols, private symbols,
// and empty packages are reported as plain notices, not errors.
func (r *Reporter) Report(target string) error {
	pkgRef, symbol := splitTarget(target)

	ref, rootOK := r.Finder.Find(pkgRef)
	if !rootOK {
		if _, err := fmt.Fprintf(r.Stdout,
			"Cannot resolve '%s': no Odin installation root found.\n"+
				"Set %s to your Odin installation directory.\n",
			pkgRef, odinsrc.RootEnv); err != nil {
			return errtrace.Wrap(err)
		}
		return nil
	}

	var asm odindoc.Assembler
	for _, file := range ref.Files {
		decls, err := r.Scanner.ScanFile(file)
		if err != nil {
			// Files that vanish or turn unreadable between
			// discovery and scanning are skipped like any
			// other unreadable file.
			continue
		}
		asm.Add(decls)
	}

	if symbol != "" {
		return r.reportSymbol(&asm, ref.Name, symbol)
	}
	return r.reportPackage(&asm, ref.Name)
}

func (r *Reporter) reportSymbol(asm *odindoc.Assembler, pkg, symbol string) error {
	decl, res := asm.Lookup(symbol)
	switch res {
	case odindoc.LookupNotFound:
		_, err := fmt.Fprintf(r.Stdout,
			"Symbol '%s' not found in package '%s'.\n", symbol, pkg)
		return errtrace.Wrap(err)
	case odindoc.LookupPrivate:
		_, err := fmt.Fprintf(r.Stdout,
			"Symbol '%s' in package '%s' is private.\n", symbol, pkg)
		return errtrace.Wrap(err)
	default:
		return errtrace.Wrap(r.Renderer.RenderSymbol(r.Stdout, decl))
	}
}

func (r *Reporter) reportPackage(asm *odindoc.Assembler, name string) error {
	pkg := asm.Package(name, r.IncludePrivate)
	if pkg.IsEmpty() {
		_, err := fmt.Fprintf(r.Stdout,
			"No declarations found in package '%s'.\n", name)
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(r.Renderer.RenderPackage(r.Stdout, pkg))
}

// splitTarget separates a '<package>.<symbol>' target
// into its package reference and symbol name.
//
// The split applies only when the target is not an existing
// directory and contains exactly one dot with text on both sides.
// Anything else is a whole-package reference:
// paths like './src' or 'a.b.c' never name symbols.
func splitTarget(target string) (pkg, symbol string) {
	if isDir(target) {
		return target, ""
	}
	if strings.Count(target, ".") != 1 {
		return target, ""
	}
	idx := strings.LastIndexByte(target, '.')
	if idx == 0 || idx == len(target)-1 {
		return target, ""
	}
	return target[:idx], target[idx+1:]
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
