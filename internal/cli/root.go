package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grayvines/mkpkg/internal/branding"
	"github.com/grayvines/mkpkg/internal/config"
	"github.com/grayvines/mkpkg/internal/options"
	"github.com/grayvines/mkpkg/internal/output"
	"github.com/grayvines/mkpkg/internal/plan"
	"github.com/grayvines/mkpkg/internal/scaffold"
	"github.com/grayvines/mkpkg/internal/tooling"
)

// Exit codes returned by ExitCode.
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitUsageConflict = 2
	ExitTargetExists  = 3
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Env holds the collaborators a run uses. Tests replace them.
type Env struct {
	Runner   tooling.Runner
	LookPath tooling.LookPathFunc
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
}

func defaultEnv() *Env {
	return &Env{
		Runner:   tooling.ExecRunner{},
		LookPath: exec.LookPath,
		Now:      time.Now,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

type rootFlags struct {
	author      string
	authorEmail string
	clis        []string
	readme      string
	testRunner  string
	supports    []string
	status      string
	outputDir   string
	configPath  string
	verbose     bool

	docs, noDocs       bool
	single, noPackage  bool
	bare, noBare       bool
	style, noStyle     bool
	initVCS, noInitVCS bool
	closed, open       bool
}

// NewRootCmd builds the mkpkg command tree.
func NewRootCmd(env *Env) *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " NAME",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a new Python project named NAME: packaging metadata,
license, tox and coverage configuration, CI files, an optional Sphinx
skeleton, and an initial git commit.

A NAME that matches a subcommand (config, doctor, version) must follow --,
as in "` + branding.CLIName() + ` -- config".`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(output.LogConfig{Verbose: f.verbose, Writer: env.Stderr})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, env, f, args[0])
		},
	}
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&f.configPath, "config", config.FilePath(), "Path to the user config file")

	fl := cmd.Flags()
	fl.StringVar(&f.author, "author", "", "the name of the package author (default: your full name)")
	fl.StringVar(&f.authorEmail, "author-email", "", "the package author's email")
	fl.StringArrayVarP(&f.clis, "cli", "c", nil, "include a CLI in the resulting package with the given name (repeatable)")
	fl.StringVar(&f.readme, "readme", "", "a (rst) README for the package")
	fl.StringVarP(&f.testRunner, "test-runner", "t", "", fmt.Sprintf("the test runner to use (%s; default %s)", joinChoices(options.TestRunners()), options.DefaultTestRunner))
	fl.StringSliceVarP(&f.supports, "supports", "s", nil, fmt.Sprintf("a version of Python supported by the package (%s)", joinChoices(options.RuntimeTags())))
	fl.StringVar(&f.status, "status", "", fmt.Sprintf("the initial package development status (%s; default %s)", joinChoices(options.Statuses()), options.DefaultStatus))
	fl.StringVarP(&f.outputDir, "output-dir", "C", ".", "directory to create the project in")

	toggle(cmd, &f.docs, &f.noDocs, "docs", "no-docs", "generate a Sphinx documentation template for the new package")
	fl.BoolVar(&f.single, "single", false, "create a single module rather than a package")
	fl.BoolVar(&f.noPackage, "no-package", false, "alias for --single")
	toggle(cmd, &f.bare, &f.noBare, "bare", "no-bare", "only create the core source files")
	toggle(cmd, &f.style, &f.noStyle, "style", "no-style", "run flake8 by default in tox runs (default true)")
	toggle(cmd, &f.initVCS, &f.noInitVCS, "init-vcs", "no-init-vcs", "initialize a git repository (default true)")
	toggle(cmd, &f.closed, &f.open, "closed", "open", "create a closed source package")

	cmd.AddCommand(newVersionCmd(env), newConfigCmd(env, f), newDoctorCmd(env, f))
	return cmd
}

// toggle registers a --name/--negation pair of boolean flags.
func toggle(cmd *cobra.Command, on, off *bool, name, negation, usage string) {
	cmd.Flags().BoolVar(on, name, false, usage)
	cmd.Flags().BoolVar(off, negation, false, "turn off --"+name)
	cmd.MarkFlagsMutuallyExclusive(name, negation)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return NewRootCmd(defaultEnv()).Execute()
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, options.ErrUsageConflict):
		return ExitUsageConflict
	case errors.Is(err, scaffold.ErrExists):
		return ExitTargetExists
	default:
		return ExitGeneralError
	}
}

func runGenerate(cmd *cobra.Command, env *Env, f *rootFlags, name string) error {
	cfg, err := config.Open(f.configPath)
	if err != nil {
		return err
	}

	opts, err := options.New(resolveInput(cmd, f, cfg.Defaults(), name))
	if err != nil {
		return err
	}

	p, err := plan.Build(opts, env.Now())
	if err != nil {
		return fmt.Errorf("planning %s: %w", name, err)
	}
	for _, path := range p.Paths() {
		output.Debug("planned file", "path", path)
	}

	result, err := scaffold.Write(f.outputDir, p)
	if err != nil {
		return err
	}

	inv := &tooling.Invoker{Runner: env.Runner, BaseDir: f.outputDir}
	steps, err := inv.Finish(cmd.Context(), opts, p)
	if err != nil {
		return err
	}

	return output.PrintSummary(env.Stdout, output.Summary{
		Name:  opts.Name,
		Dir:   result.OutputDir,
		Files: result.Files,
		Steps: steps,
	})
}

// resolveInput merges explicit flags over configured defaults. Options left
// unset by both fall through to the built-in defaults in options.New.
func resolveInput(cmd *cobra.Command, f *rootFlags, d config.Defaults, name string) options.Input {
	flags := cmd.Flags()
	in := options.Input{
		Name:        name,
		Author:      pick(flags.Changed("author"), f.author, d.Author),
		AuthorEmail: pick(flags.Changed("author-email"), f.authorEmail, d.AuthorEmail),
		CLIs:        f.clis,
		Readme:      f.readme,
		Single:      f.single || f.noPackage,
		TestRunner:  pick(flags.Changed("test-runner"), f.testRunner, d.TestRunner),
		Status:      pick(flags.Changed("status"), f.status, d.Status),
		Supports:    d.Supports,
	}
	if flags.Changed("supports") {
		in.Supports = f.supports
	}

	in.Docs = resolveToggle(flags.Changed("docs"), flags.Changed("no-docs"), f.docs, f.noDocs, d.Docs, false)
	in.Bare = resolveToggle(flags.Changed("bare"), flags.Changed("no-bare"), f.bare, f.noBare, nil, false)
	in.Style = resolveToggle(flags.Changed("style"), flags.Changed("no-style"), f.style, f.noStyle, d.Style, true)
	in.InitVCS = resolveToggle(flags.Changed("init-vcs"), flags.Changed("no-init-vcs"), f.initVCS, f.noInitVCS, d.InitVCS, true)
	in.Closed = resolveToggle(flags.Changed("closed"), flags.Changed("open"), f.closed, f.open, d.Closed, false)
	return in
}

func pick(changed bool, flag, fallback string) string {
	if changed {
		return flag
	}
	return fallback
}

func resolveToggle(onSet, offSet, on, off bool, configured *bool, builtin bool) bool {
	switch {
	case onSet:
		return on
	case offSet:
		return !off
	case configured != nil:
		return *configured
	default:
		return builtin
	}
}

func joinChoices(choices []string) string {
	return strings.Join(choices, ", ")
}
