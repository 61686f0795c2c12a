package options

import (
	"errors"
	"fmt"
	"os/user"
	"regexp"
	"slices"
	"strings"

	"github.com/grayvines/mkpkg/internal/branding"
)

// ErrUsageConflict is returned for option sets that can never be generated.
var ErrUsageConflict = errors.New("usage conflict")

// distributionPrefix is stripped from project names when deriving the package.
const distributionPrefix = "python-"

// TestRunner selects the test runner wired into the generated tox.ini.
type TestRunner string

// Supported test runners.
const (
	RunnerTrial  TestRunner = "trial"
	RunnerPytest TestRunner = "pytest"
)

// Defaults applied when neither a flag nor the config file sets a value.
var (
	DefaultSupports   = []string{"py36", "py37", "pypy", "pypy3"}
	DefaultStatus     = "alpha"
	DefaultTestRunner = RunnerTrial
)

var runtimeTags = []string{
	"jython",
	"py27",
	"py35",
	"py36",
	"py37",
	"py38",
	"py39",
	"pypy",
	"pypy3",
}

var statuses = []string{
	"planning",
	"prealpha",
	"alpha",
	"beta",
	"stable",
	"mature",
	"inactive",
}

// RuntimeTags returns every accepted --supports value in sorted order.
func RuntimeTags() []string { return slices.Clone(runtimeTags) }

// Statuses returns every accepted --status value.
func Statuses() []string { return slices.Clone(statuses) }

// TestRunners returns every accepted --test-runner value.
func TestRunners() []string { return []string{string(RunnerPytest), string(RunnerTrial)} }

// Input is the unvalidated option set collected by the CLI.
type Input struct {
	Name        string
	Author      string
	AuthorEmail string
	CLIs        []string
	Readme      string
	TestRunner  string
	Supports    []string
	Status      string
	Docs        bool
	Single      bool
	Bare        bool
	Style       bool
	InitVCS     bool
	Closed      bool
}

// GenerationOptions is the normalized configuration for one generation run.
// It is built once by New and must not be modified afterwards.
type GenerationOptions struct {
	Name        string
	PackageName string
	Author      string
	AuthorEmail string
	CLIs        []string
	Readme      string
	TestRunner  TestRunner
	Supports    []string // sorted, unique
	Status      string
	Docs        bool
	Single      bool
	Bare        bool
	Style       bool
	InitVCS     bool
	Closed      bool
}

// PackageName derives the importable package identifier from a project name:
// a leading "python-" is dropped, the rest lower-cased and hyphens become
// underscores.
func PackageName(name string) string {
	name = strings.TrimPrefix(name, distributionPrefix)
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}

// identifier matches a valid Python module name.
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ModuleName returns the Python module name for a CLI name: hyphens become
// underscores. The console script itself keeps the original name.
func ModuleName(cli string) string {
	return strings.ReplaceAll(cli, "-", "_")
}

// New validates in and returns the normalized options.
func New(in Input) (*GenerationOptions, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: a project name is required", ErrUsageConflict)
	}
	packageName := PackageName(in.Name)
	if packageName == "" {
		return nil, fmt.Errorf("%w: %q does not leave a package name once %q is removed", ErrUsageConflict, in.Name, distributionPrefix)
	}

	if in.Single && len(in.CLIs) > 1 {
		return nil, fmt.Errorf("%w: cannot create a single module with multiple CLIs", ErrUsageConflict)
	}
	seen := make(map[string]string, len(in.CLIs))
	for _, cli := range in.CLIs {
		if strings.TrimSpace(cli) == "" {
			return nil, fmt.Errorf("%w: CLI names must not be empty", ErrUsageConflict)
		}
		module := ModuleName(cli)
		if !identifier.MatchString(module) {
			return nil, fmt.Errorf("%w: CLI %q does not make a Python module name", ErrUsageConflict, cli)
		}
		if prev, ok := seen[module]; ok {
			if prev == cli {
				return nil, fmt.Errorf("%w: CLI %q given more than once", ErrUsageConflict, cli)
			}
			return nil, fmt.Errorf("%w: CLIs %q and %q share the module name %q", ErrUsageConflict, prev, cli, module)
		}
		seen[module] = cli
	}

	runner := DefaultTestRunner
	if in.TestRunner != "" {
		runner = TestRunner(in.TestRunner)
	}
	if !slices.Contains(TestRunners(), string(runner)) {
		return nil, fmt.Errorf("%w: unknown test runner %q (choose from %s)", ErrUsageConflict, runner, strings.Join(TestRunners(), ", "))
	}

	status := in.Status
	if status == "" {
		status = DefaultStatus
	}
	if !slices.Contains(statuses, status) {
		return nil, fmt.Errorf("%w: unknown status %q (choose from %s)", ErrUsageConflict, status, strings.Join(statuses, ", "))
	}

	supports := in.Supports
	if len(supports) == 0 {
		supports = DefaultSupports
	}
	for _, tag := range supports {
		if !slices.Contains(runtimeTags, tag) {
			return nil, fmt.Errorf("%w: unknown runtime %q (choose from %s)", ErrUsageConflict, tag, strings.Join(runtimeTags, ", "))
		}
	}
	supports = slices.Clone(supports)
	slices.Sort(supports)
	supports = slices.Compact(supports)

	author := in.Author
	if author == "" {
		author = DefaultAuthor()
	}

	return &GenerationOptions{
		Name:        in.Name,
		PackageName: packageName,
		Author:      author,
		AuthorEmail: in.AuthorEmail,
		CLIs:        slices.Clone(in.CLIs),
		Readme:      in.Readme,
		TestRunner:  runner,
		Supports:    supports,
		Status:      status,
		Docs:        in.Docs,
		Single:      in.Single,
		Bare:        in.Bare,
		Style:       in.Style,
		InitVCS:     in.InitVCS,
		Closed:      in.Closed,
	}, nil
}

// Email returns the configured author e-mail, or the branded default built
// from the package name.
func (o *GenerationOptions) Email() string {
	if o.AuthorEmail != "" {
		return o.AuthorEmail
	}
	return branding.DefaultEmail(o.PackageName)
}

// Supported reports whether the runtime tag is in the supported set.
func (o *GenerationOptions) Supported(tag string) bool {
	_, found := slices.BinarySearch(o.Supports, tag)
	return found
}

// DefaultAuthor returns the current user's full name, the part of the GECOS
// field before the first comma, or the login name when that is empty.
func DefaultAuthor() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	name, _, _ := strings.Cut(u.Name, ",")
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return u.Username
}
