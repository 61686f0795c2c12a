package tooling

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/grayvines/mkpkg/internal/output"
)

// Runner executes one external program in dir and waits for it to exit.
// A non-zero exit is an error.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs programs found on PATH.
type ExecRunner struct{}

// Run implements Runner. Combined output is included in the returned error.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s is required but was not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	output.Info("running", "cmd", CommandLine(name, args...), "dir", dir)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("running %s: %w\n%s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// CommandLine renders a program invocation for display.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
