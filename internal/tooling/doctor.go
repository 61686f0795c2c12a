package tooling

import (
	"fmt"
	"io"
	"os/exec"
)

// Requirement is an external program some generation runs need.
type Requirement struct {
	Program string
	Needed  string // the flag that makes it required
}

// Requirements lists every program mkpkg may invoke.
func Requirements() []Requirement {
	return []Requirement{
		{Program: git, Needed: "--init-vcs"},
		{Program: sphinxQuickstart, Needed: "--docs"},
	}
}

// LookPathFunc resolves a program name to a path.
type LookPathFunc func(name string) (string, error)

// CheckRequirements reports whether each required program is on PATH and
// returns the number missing.
func CheckRequirements(w io.Writer, lookPath LookPathFunc) int {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	fmt.Fprintln(w, "External tools:")
	missing := 0
	for _, req := range Requirements() {
		path, err := lookPath(req.Program)
		if err != nil {
			missing++
			fmt.Fprintf(w, "  [MISS] %s (needed for %s)\n", req.Program, req.Needed)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s at %s\n", req.Program, path)
	}
	return missing
}
