package plan

import (
	"fmt"
	"slices"

	"github.com/grayvines/mkpkg/internal/ini"
	"github.com/grayvines/mkpkg/internal/options"
)

const (
	docsEnv      = "docs-{html,doctest,linkcheck,spelling,style}"
	codecovEnv   = "codecov"
	codecovPass  = "CODECOV* CI TRAVIS TRAVIS_*"
	sphinxTarget = "{toxinidir}/docs/ {envtmpdir}/build {posargs:-a -n -W}"
)

// EnvList returns the tox environments run by default: one per supported
// runtime, then readme and safety, then style and docs when enabled.
func EnvList(o *options.GenerationOptions) []string {
	envs := slices.Clone(o.Supports)
	slices.Sort(envs)
	envs = append(envs, "readme", "safety")
	if o.Style {
		envs = append(envs, "style")
	}
	if o.Docs {
		envs = append(envs, docsEnv)
	}
	return envs
}

// toxINI renders the test automation configuration.
func toxINI(o *options.GenerationOptions, layout Layout) (string, error) {
	doc := ini.New()

	if err := doc.AddSection("tox",
		ini.Lines("envlist", EnvList(o)...),
		ini.Set("skipsdist", "True"),
	); err != nil {
		return "", err
	}

	if err := doc.AddSection("testenv",
		ini.Set("changedir", "{envtmpdir}"),
		ini.Lines("setenv",
			"coverage: MAYBE_COVERAGE = coverage run -m",
			"coverage: COVERAGE_RCFILE = {toxinidir}/.coveragerc",
			"coverage: COVERAGE_DEBUG_FILE = {envtmpdir}/coverage-debug",
			"coverage: COVERAGE_FILE = {toxinidir}/.coverage",
		),
		ini.Lines("commands",
			"{envpython} -m pip install '{toxinidir}'",
			testCommand(o, layout),
			"coverage: {envpython} -m coverage report --show-missing",
			"coverage: {envpython} -m coverage html --directory={envtmpdir}/htmlcov",
		),
		ini.Lines("deps", testenvDeps(o)...),
	); err != nil {
		return "", err
	}

	if err := doc.AddSection("testenv:readme",
		ini.Set("changedir", "{toxinidir}"),
		ini.Set("deps", "readme_renderer"),
		ini.Lines("commands",
			"{envpython} setup.py check --restructuredtext --strict",
		),
	); err != nil {
		return "", err
	}

	if err := doc.AddSection("testenv:safety",
		ini.Set("deps", "safety"),
		ini.Lines("commands",
			"{envpython} -m pip install '{toxinidir}'",
			"{envpython} -m safety check",
		),
	); err != nil {
		return "", err
	}

	if o.Style {
		lint := "{envpython} -m flake8 {posargs} {toxinidir}/" + layout.lintTarget(o)
		if o.Docs {
			lint += " {toxinidir}/docs"
		}
		if err := doc.AddSection("testenv:style",
			ini.Set("deps", "flake8"),
			ini.Lines("commands", lint),
		); err != nil {
			return "", err
		}
	}

	if o.Docs {
		if err := doc.AddSection("testenv:"+docsEnv,
			ini.Set("changedir", "docs"),
			ini.Lines("commands",
				"html: {envpython} -m sphinx -b html "+sphinxTarget,
				"doctest: {envpython} -m sphinx -b doctest "+sphinxTarget,
				"linkcheck: {envpython} -m sphinx -b linkcheck "+sphinxTarget,
				"spelling: {envpython} -m sphinx -b spelling "+sphinxTarget,
				"style: doc8 {posargs} {toxinidir}/docs",
			),
			ini.Lines("deps",
				"-r{toxinidir}/docs/requirements.txt",
				"{toxinidir}",
				"style: doc8",
			),
		); err != nil {
			return "", err
		}
	}

	if !o.Closed {
		if err := doc.AddSection("testenv:"+codecovEnv,
			ini.Set("passenv", codecovPass),
			ini.Lines("setenv",
				"COVERAGE_DEBUG_FILE={envtmpdir}/coverage-debug",
				"COVERAGE_FILE={toxinidir}/.coverage",
			),
			ini.Lines("commands",
				"{envpython} -m coverage xml -o {envtmpdir}/coverage.xml",
				"{envpython} -m codecov --required --disable gcov --file {envtmpdir}/coverage.xml",
			),
			ini.Lines("deps", "coverage", "codecov"),
		); err != nil {
			return "", err
		}
	}

	return doc.String(), nil
}

func testCommand(o *options.GenerationOptions, layout Layout) string {
	target := layout.testTarget(o)
	switch o.TestRunner {
	case options.RunnerPytest:
		return fmt.Sprintf("{envpython} -m {env:MAYBE_COVERAGE:} pytest {posargs:%s}", target)
	default:
		return fmt.Sprintf("{envpython} -m {env:MAYBE_COVERAGE:} twisted.trial {posargs:%s}", target)
	}
}

func testenvDeps(o *options.GenerationOptions) []string {
	deps := slices.Clone(testDeps[o.TestRunner])
	deps = append(deps, "coverage: coverage")
	if !o.Closed {
		deps = append(deps, "codecov: codecov")
	}
	return deps
}
