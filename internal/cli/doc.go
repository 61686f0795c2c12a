// Package cli defines the Cobra command tree for mkpkg. The root command
// generates a project; version, config and doctor are its subcommands.
// Commands merge flags over user defaults and delegate the work to the
// options, plan, scaffold and tooling packages.
package cli
