// Package tooling runs the external programs that finish a generated
// project: sphinx-quickstart for the documentation skeleton and git for the
// initial commit. Programs are reached through a Runner so callers and tests
// can substitute their own.
package tooling
