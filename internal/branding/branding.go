// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Forks change the file, not the code.
package branding

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	ProjectURL  string `yaml:"project_url"`
	EmailUser   string `yaml:"email_user"`
	EmailDomain string `yaml:"email_domain"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "mkpkg",
			DisplayName: "mkpkg",
			Description: "Create a new Python package",
			HomeDir:     ".mkpkg",
			EnvPrefix:   "MKPKG",
			ProjectURL:  "https://github.com/Julian",
			EmailUser:   "Julian",
			EmailDomain: "GrayVines.com",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "mkpkg").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".mkpkg").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MKPKG").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ProjectURL returns the URL of a generated project, e.g.
// ProjectURL("widgets") → "https://github.com/Julian/widgets".
func ProjectURL(name string) string {
	load()
	return strings.TrimSuffix(defaults.ProjectURL, "/") + "/" + name
}

// DefaultEmail returns the author e-mail used when none is configured,
// e.g., DefaultEmail("widgets") → "Julian+widgets@GrayVines.com".
func DefaultEmail(packageName string) string {
	load()
	return fmt.Sprintf("%s+%s@%s", defaults.EmailUser, packageName, defaults.EmailDomain)
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("author") → "MKPKG_AUTHOR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
