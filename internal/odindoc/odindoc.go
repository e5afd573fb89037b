// Package odindoc folds scanned declarations
// into a displayable documentation model for a package.
// This is where deduplication, visibility filtering,
// grouping, and ordering happen.
package odindoc

import (
	"sort"

	"go.odig.dev/odig/internal/odinsrc"
)

// Package holds the documentation extracted for one Odin package,
// grouped and ordered for display.
type Package struct {
	// Name of the package as it should appear in the report.
	Name string

	// Constants, Types, and Procs hold the package's declarations,
	// each group sorted by name.
	Constants []odinsrc.Decl
	Types     []odinsrc.Decl
	Procs     []odinsrc.Decl
}

// IsEmpty reports whether the package has no declarations to show.
func (p *Package) IsEmpty() bool {
	return len(p.Constants) == 0 && len(p.Types) == 0 && len(p.Procs) == 0
}

// LookupResult is the outcome of a single-symbol lookup.
type LookupResult int

const (
	// LookupFound means the symbol exists and is public.
	LookupFound LookupResult = iota

	// LookupPrivate means the symbol exists but is private.
	LookupPrivate

	// LookupNotFound means no declaration binds the name.
	LookupNotFound
)

// Assembler accumulates per-file declaration sequences
// and answers package and symbol queries over them.
//
// Files must be added in enumeration order:
// when two files bind the same name,
// the first binding encountered wins.
type Assembler struct {
	decls []odinsrc.Decl
	seen  map[string]struct{}
}

// Add appends the declarations of one scanned file,
// dropping any whose name was already bound by an earlier file.
func (a *Assembler) Add(decls []odinsrc.Decl) {
	if a.seen == nil {
		a.seen = make(map[string]struct{})
	}
	for _, d := range decls {
		if _, ok := a.seen[d.Name]; ok {
			continue
		}
		a.seen[d.Name] = struct{}{}
		a.decls = append(a.decls, d)
	}
}

// Lookup finds a single declaration by name.
// Private declarations are still found,
// but reported as [LookupPrivate].
func (a *Assembler) Lookup(name string) (odinsrc.Decl, LookupResult) {
	for _, d := range a.decls {
		if d.Name != name {
			continue
		}
		if d.Private {
			return d, LookupPrivate
		}
		return d, LookupFound
	}
	return odinsrc.Decl{}, LookupNotFound
}

// Package groups the accumulated declarations for display.
// Private declarations are dropped unless includePrivate is set.
func (a *Assembler) Package(name string, includePrivate bool) *Package {
	pkg := Package{Name: name}
	for _, d := range a.decls {
		if d.Private && !includePrivate {
			continue
		}
		switch {
		case d.Kind == odinsrc.Procedure:
			pkg.Procs = append(pkg.Procs, d)
		case d.Kind.IsType():
			pkg.Types = append(pkg.Types, d)
		default:
			pkg.Constants = append(pkg.Constants, d)
		}
	}

	for _, group := range [][]odinsrc.Decl{pkg.Constants, pkg.Types, pkg.Procs} {
		sort.Slice(group, func(i, j int) bool {
			return group[i].Name < group[j].Name
		})
	}
	return &pkg
}
