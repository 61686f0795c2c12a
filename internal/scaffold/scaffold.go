package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lithammer/dedent"

	"github.com/grayvines/mkpkg/internal/output"
	"github.com/grayvines/mkpkg/internal/plan"
)

// ErrExists is returned when the project directory is already present.
var ErrExists = errors.New("already exists")

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Result holds the outcome of writing a plan.
type Result struct {
	// OutputDir is the project directory, or the base directory in bare mode.
	OutputDir string
	// Files lists the written paths relative to the base directory.
	Files []string
}

// Write materializes p under baseDir. Outside bare mode the project root is
// created first and an existing root aborts the run before anything is
// written. Files already written are left in place when a later write fails.
func Write(baseDir string, p *plan.Plan) (*Result, error) {
	result := &Result{OutputDir: baseDir}

	if !p.Bare {
		root := filepath.Join(baseDir, p.Root)
		if err := os.Mkdir(root, dirPerm); err != nil {
			if errors.Is(err, fs.ErrExist) {
				return nil, fmt.Errorf("%s %w", root, ErrExists)
			}
			return nil, fmt.Errorf("creating project directory: %w", err)
		}
		result.OutputDir = root
	}

	for _, f := range p.Targets() {
		if err := writeFile(baseDir, f); err != nil {
			return result, err
		}
		output.Debug("wrote file", "path", f.Path)
		result.Files = append(result.Files, f.Path)
	}
	return result, nil
}

func writeFile(baseDir string, f plan.File) error {
	path := filepath.Join(baseDir, filepath.FromSlash(f.Path))
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.Path, err)
	}
	if err := os.WriteFile(path, []byte(Dedent(f.Content)), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return nil
}

// Dedent removes the indentation common to every line of s along with any
// leading newlines.
func Dedent(s string) string {
	return strings.TrimLeft(dedent.Dedent(s), "\n")
}
