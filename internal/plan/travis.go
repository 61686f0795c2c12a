package plan

import (
	"bytes"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/grayvines/mkpkg/internal/options"
)

type travisConfig struct {
	Language     string   `yaml:"language"`
	Python       []string `yaml:"python"`
	Install      []string `yaml:"install"`
	Script       []string `yaml:"script"`
	AfterSuccess []string `yaml:"after_success,omitempty"`
}

// TravisPythons returns the Travis CI python entries for the supported
// runtimes, in tag order. Runtimes Travis cannot provide are skipped.
func TravisPythons(o *options.GenerationOptions) []string {
	var pythons []string
	for _, tag := range o.Supports {
		if v, ok := travisVersions[tag]; ok {
			pythons = append(pythons, v)
		}
	}
	return pythons
}

// travisYAML renders the CI configuration for the supported runtimes.
func travisYAML(o *options.GenerationOptions) (string, error) {
	cfg := travisConfig{
		Language:     "python",
		Python:       TravisPythons(o),
		Install:      []string{"pip install tox-travis"},
		Script:       []string{"tox"},
		AfterSuccess: []string{"tox -e " + codecovEnv},
	}
	if cfg.Python == nil {
		cfg.Python = []string{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return "", fmt.Errorf("encoding .travis.yml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding .travis.yml: %w", err)
	}
	return buf.String(), nil
}
