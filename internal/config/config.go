package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/grayvines/mkpkg/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyAuthor      = "author"
	KeyAuthorEmail = "author_email"
	KeyTestRunner  = "test_runner"
	KeySupports    = "supports"
	KeyStatus      = "status"
	KeyDocs        = "docs"
	KeyStyle       = "style"
	KeyInitVCS     = "init_vcs"
	KeyClosed      = "closed"
)

var boolKeys = []string{KeyDocs, KeyStyle, KeyInitVCS, KeyClosed}

// Keys returns every config key in display order.
func Keys() []string {
	return []string{
		KeyAuthor, KeyAuthorEmail, KeyTestRunner, KeySupports, KeyStatus,
		KeyDocs, KeyStyle, KeyInitVCS, KeyClosed,
	}
}

// Dir returns the path to the mkpkg config directory (~/.mkpkg/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.mkpkg/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Config is a loaded set of user defaults.
type Config struct {
	v    *viper.Viper
	path string
}

// Defaults are the generation defaults a user has configured. Pointer
// fields are nil when unset so callers can apply their own fallback.
type Defaults struct {
	Author      string
	AuthorEmail string
	TestRunner  string
	Supports    []string
	Status      string
	Docs        *bool
	Style       *bool
	InitVCS     *bool
	Closed      *bool
}

// Load reads the default config file and environment.
func Load() (*Config, error) {
	return Open(FilePath())
}

// Open reads the config file at path and the MKPKG_* environment. A missing
// file is not an error. A file that fails schema validation is.
func Open(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		issues, err := Validate(data)
		if err != nil {
			return nil, fmt.Errorf("validating config file %s: %w", path, err)
		}
		if len(issues) > 0 {
			return nil, &InvalidError{Source: path, Issues: issues}
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	return &Config{v: v, path: path}, nil
}

// Path returns the file this config reads from and writes to.
func (c *Config) Path() string { return c.path }

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	if key == KeySupports {
		return strings.Join(c.v.GetStringSlice(key), " ")
	}
	return c.v.GetString(key)
}

// Defaults returns the configured generation defaults.
func (c *Config) Defaults() Defaults {
	d := Defaults{
		Author:      c.v.GetString(KeyAuthor),
		AuthorEmail: c.v.GetString(KeyAuthorEmail),
		TestRunner:  c.v.GetString(KeyTestRunner),
		Status:      c.v.GetString(KeyStatus),
		Docs:        c.boolPtr(KeyDocs),
		Style:       c.boolPtr(KeyStyle),
		InitVCS:     c.boolPtr(KeyInitVCS),
		Closed:      c.boolPtr(KeyClosed),
	}
	if c.v.IsSet(KeySupports) {
		d.Supports = c.v.GetStringSlice(KeySupports)
	}
	return d
}

func (c *Config) boolPtr(key string) *bool {
	if !c.v.IsSet(key) {
		return nil
	}
	b := c.v.GetBool(key)
	return &b
}

// Set validates and stores a key, then saves the config file.
func (c *Config) Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown config key %q (choose from %s)", key, strings.Join(Keys(), ", "))
	}

	var typed any = value
	switch {
	case key == KeySupports:
		typed = strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' '
		})
	case slices.Contains(boolKeys, key):
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config key %q expects true or false, got %q", key, value)
		}
		typed = b
	}

	settings := c.fileSettings()
	settings[key] = typed
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	issues, err := Validate(data)
	if err != nil {
		return err
	}
	if len(issues) > 0 {
		return &InvalidError{Source: key, Issues: issues}
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(c.path), err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	c.v.Set(key, typed)
	return nil
}

// fileSettings returns the values currently stored in the file, without
// environment overrides.
func (c *Config) fileSettings() map[string]any {
	settings := map[string]any{}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return settings
	}
	_ = yaml.Unmarshal(data, &settings)
	if settings == nil {
		settings = map[string]any{}
	}
	return settings
}
