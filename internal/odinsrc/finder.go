package odinsrc

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.odig.dev/odig/internal/sliceutil"
)

// _srcExt is the Odin source file extension.
const _srcExt = ".odin"

// _corePrefix marks package references resolved
// against the installation root's core collection.
const _corePrefix = "core:"

// PackageRef is a reference to an Odin package
// that has been located on disk but not yet scanned.
type PackageRef struct {
	// Name of the package for display purposes.
	Name string

	// Directory holding the package's source files.
	Dir string

	// Ordered list of .odin files in the package.
	// Empty if the directory was unreadable or held no sources.
	Files []string
}

// Finder turns a package reference into a list of source files.
//
// The zero value looks up local directories only;
// set Root to resolve core: references.
type Finder struct {
	// Root is the resolved Odin installation root.
	// Leave empty if no root was found.
	Root string

	// Logger to write debug messages to.
	//
	// Use nil to disable debug logging.
	DebugLog *log.Logger
}

// Find resolves ref into the set of source files making up a package.
//
// A bare reference is a filesystem directory whose immediate .odin
// files form the package; there is no recursion into subdirectories.
// A core:<name> reference is resolved against the installation root,
// and rootResolved is false if no root is available for it.
//
// Unreadable directories yield an empty package rather than an error.
func (f *Finder) Find(ref string) (pkg *PackageRef, rootResolved bool) {
	dir := ref
	name := ref
	if coll, ok := strings.CutPrefix(ref, _corePrefix); ok {
		if f.Root == "" {
			f.debugf("cannot resolve %q: no installation root", ref)
			return nil, false
		}
		dir = filepath.Join(f.Root, _coreDir, filepath.FromSlash(coll))
		name = coll
	} else if abs, err := filepath.Abs(dir); err == nil {
		name = filepath.Base(abs)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		f.debugf("read %v: %v", dir, err)
		return &PackageRef{Name: name, Dir: dir}, true
	}

	names := make([]string, 0, len(ents))
	for _, ent := range ents {
		if !ent.IsDir() {
			names = append(names, ent.Name())
		}
	}
	names = sliceutil.RemoveFunc(names, func(base string) bool {
		return !strings.HasSuffix(base, _srcExt)
	})
	files := sliceutil.Transform(names, func(base string) string {
		return filepath.Join(dir, base)
	})
	f.debugf("package %v: %d source files in %v", name, len(files), dir)

	return &PackageRef{
		Name:  name,
		Dir:   dir,
		Files: files,
	}, true
}

func (f *Finder) debugf(format string, args ...any) {
	if f.DebugLog != nil {
		f.DebugLog.Printf(format, args...)
	}
}
