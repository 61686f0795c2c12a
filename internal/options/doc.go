// Package options turns raw command-line input into a validated, read-only
// GenerationOptions value. It derives the Python package identifier from the
// project name, fills in defaults for unset choices, and rejects option
// combinations that cannot be generated (such as several console scripts in
// a single module).
package options
