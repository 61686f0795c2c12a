package tooling

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/grayvines/mkpkg/internal/options"
	"github.com/grayvines/mkpkg/internal/plan"
)

const (
	sphinxQuickstart = "sphinx-quickstart"
	git              = "git"
	initialCommit    = "Initial commit"
)

// Invoker runs the post-generation tools for one project.
type Invoker struct {
	Runner Runner
	// BaseDir is the directory the project root was created in.
	BaseDir string
}

// Finish runs every tool o asks for, in order: documentation, then version
// control. It does nothing for bare plans. The returned steps describe each
// completed invocation. The first failure stops the run and nothing already
// written is removed.
func (inv *Invoker) Finish(ctx context.Context, o *options.GenerationOptions, p *plan.Plan) ([]string, error) {
	if p.Bare {
		return nil, nil
	}

	var steps []string
	if o.Docs {
		s, err := inv.Docs(ctx, o, p)
		steps = append(steps, s...)
		if err != nil {
			return steps, err
		}
	}
	if o.InitVCS {
		s, err := inv.InitVCS(ctx, p)
		steps = append(steps, s...)
		if err != nil {
			return steps, err
		}
	}
	return steps, nil
}

// Docs creates the Sphinx skeleton under <root>/docs and replaces its index
// with the README followed by a table of contents.
func (inv *Invoker) Docs(ctx context.Context, o *options.GenerationOptions, p *plan.Plan) ([]string, error) {
	args := DocsArgs(o, p)
	if err := inv.Runner.Run(ctx, inv.BaseDir, sphinxQuickstart, args...); err != nil {
		return nil, fmt.Errorf("generating documentation: %w", err)
	}
	steps := []string{CommandLine(sphinxQuickstart, args...)}

	index, err := p.DocsIndex()
	if err != nil {
		return steps, err
	}
	dest := filepath.Join(inv.BaseDir, p.Root, filepath.FromSlash(plan.DocsIndexPath))
	if err := os.WriteFile(dest, []byte(index), 0o644); err != nil {
		return steps, fmt.Errorf("writing %s: %w", plan.DocsIndexPath, err)
	}
	return steps, nil
}

// DocsArgs returns the sphinx-quickstart arguments for the project.
func DocsArgs(o *options.GenerationOptions, p *plan.Plan) []string {
	return []string{
		"--quiet",
		"--project", o.Name,
		"--author", o.Author,
		"--release", "",
		"--ext-autodoc",
		"--ext-coverage",
		"--ext-doctest",
		"--ext-intersphinx",
		"--ext-viewcode",
		"--extensions", "sphinx.ext.napoleon",
		"--extensions", "sphinxcontrib.spelling",
		"--makefile",
		"--no-batchfile",
		path.Join(p.Root, plan.DocsDir),
	}
}

// InitVCS creates a git repository at the project root and commits the
// license file.
func (inv *Invoker) InitVCS(ctx context.Context, p *plan.Plan) ([]string, error) {
	var steps []string
	for _, args := range VCSCommands(p) {
		if err := inv.Runner.Run(ctx, inv.BaseDir, git, args...); err != nil {
			return steps, fmt.Errorf("initializing repository: %w", err)
		}
		steps = append(steps, CommandLine(git, args...))
	}
	return steps, nil
}

// VCSCommands returns the git argument lists run, in order, from the base
// directory.
func VCSCommands(p *plan.Plan) [][]string {
	gitDir := path.Join(p.Root, ".git")
	return [][]string{
		{"init", p.Root},
		{"--git-dir", gitDir, "--work-tree", p.Root, "add", plan.CopyingPath},
		{"--git-dir", gitDir, "--work-tree", p.Root, "commit", "-m", initialCommit},
	}
}
