package odinsrc

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// RootEnv is the environment variable the Odin toolchain
// uses for its installation root.
const RootEnv = "ODIN_ROOT"

// _coreDir is the subdirectory of the installation root
// holding the core library collection.
const _coreDir = "core"

// RootCandidates returns the directories searched for an Odin
// installation root, in the order they are tried:
// the ODIN_ROOT environment variable,
// a fixed set of per-platform directories,
// and the directory of the odin binary on $PATH.
func RootCandidates() []string {
	var candidates []string
	if env := os.Getenv(RootEnv); env != "" {
		candidates = append(candidates, env)
	}
	candidates = append(candidates, platformRoots()...)
	if bin, err := exec.LookPath("odin"); err == nil {
		if abs, err := filepath.Abs(bin); err == nil {
			candidates = append(candidates, filepath.Dir(abs))
		}
	}
	return candidates
}

func platformRoots() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/usr/local/odin",
			"/opt/homebrew/odin",
			"/opt/odin",
		}
	case "windows":
		return []string{
			`C:\Odin`,
			`C:\odin`,
		}
	default:
		return []string{
			"/usr/local/odin",
			"/usr/local/share/odin",
			"/opt/odin",
		}
	}
}

// ResolveRoot locates the Odin installation root.
// The first candidate from [RootCandidates] that contains
// a core subdirectory wins.
//
// The result should be resolved once near program startup
// and passed along explicitly.
func ResolveRoot() (root string, found bool) {
	for _, dir := range RootCandidates() {
		if HasCore(dir) {
			return dir, true
		}
	}
	return "", false
}

// HasCore reports whether the core library collection
// exists under the given installation root.
func HasCore(root string) bool {
	info, err := os.Stat(filepath.Join(root, _coreDir))
	return err == nil && info.IsDir()
}
