// Package text renders extracted package documentation
// as a plain-text report in the manner of go doc.
package text

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"go.odig.dev/odig/internal/highlight"
	"go.odig.dev/odig/internal/odindoc"
	"go.odig.dev/odig/internal/odinsrc"
)

// _docIndent prefixes every line of rendered doc comment text.
const _docIndent = "    "

// Highlighter colorizes a declaration line for display.
type Highlighter interface {
	Highlight(string) string
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Renderer writes documentation reports as plain text.
type Renderer struct {
	// Highlighter colorizes declaration lines.
	// Leave nil for uncolored output.
	Highlighter Highlighter
}

// RenderPackage writes a whole-package report:
// a package header followed by CONSTANTS, TYPES, and PROCEDURES
// sections, omitting sections with no entries.
func (r *Renderer) RenderPackage(w io.Writer, pkg *odindoc.Package) error {
	if _, err := fmt.Fprintf(w, "package %s\n", pkg.Name); err != nil {
		return errtrace.Wrap(err)
	}

	sections := []struct {
		title string
		decls []odinsrc.Decl
	}{
		{"CONSTANTS", pkg.Constants},
		{"TYPES", pkg.Types},
		{"PROCEDURES", pkg.Procs},
	}
	for _, sec := range sections {
		if len(sec.decls) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", sec.title); err != nil {
			return errtrace.Wrap(err)
		}
		for _, d := range sec.decls {
			if _, err := fmt.Fprintln(w); err != nil {
				return errtrace.Wrap(err)
			}
			if err := r.writeEntry(w, d); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderSymbol writes the report for a single declaration,
// including where it was found.
func (r *Renderer) RenderSymbol(w io.Writer, d odinsrc.Decl) error {
	if err := r.writeEntry(w, d); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%sfrom %s:%d\n", _docIndent, d.File, d.Line)
	return errtrace.Wrap(err)
}

func (r *Renderer) writeEntry(w io.Writer, d odinsrc.Decl) error {
	line := d.Name + " :: " + d.Signature
	if d.Signature == "" {
		line = d.Name + " ::"
	}
	if r.Highlighter != nil {
		line = r.Highlighter.Highlight(line)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return errtrace.Wrap(err)
	}
	return r.writeDoc(w, d.Doc)
}

// writeDoc indents doc text for display.
// Blank lines stay blank so paragraph breaks survive reflow.
func (r *Renderer) writeDoc(w io.Writer, doc string) error {
	if doc == "" {
		return nil
	}
	for _, line := range strings.Split(doc, "\n") {
		if line == "" {
			if _, err := fmt.Fprintln(w); err != nil {
				return errtrace.Wrap(err)
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", _docIndent, line); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}
