package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenMissingFile(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	d := c.Defaults()
	assert.Empty(t, d.Author)
	assert.Nil(t, d.Supports)
	assert.Nil(t, d.Style)
	assert.Nil(t, d.Closed)
}

func TestOpenValidFile(t *testing.T) {
	path := writeConfig(t, `author: Jane Doe
author_email: jane@example.com
test_runner: pytest
supports: [py38, py39]
status: beta
style: false
closed: true
`)
	c, err := Open(path)
	require.NoError(t, err)

	d := c.Defaults()
	assert.Equal(t, "Jane Doe", d.Author)
	assert.Equal(t, "jane@example.com", d.AuthorEmail)
	assert.Equal(t, "pytest", d.TestRunner)
	assert.Equal(t, []string{"py38", "py39"}, d.Supports)
	assert.Equal(t, "beta", d.Status)
	require.NotNil(t, d.Style)
	assert.False(t, *d.Style)
	require.NotNil(t, d.Closed)
	assert.True(t, *d.Closed)
	assert.Nil(t, d.Docs)
	assert.Equal(t, "py38 py39", c.Get(KeySupports))
}

func TestOpenInvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
	}{
		{"unknown runner", "test_runner: nose\n", "/test_runner"},
		{"unknown runtime", "supports: [py38, py4]\n", "/supports/1"},
		{"wrong type", "docs: sometimes\n", "/docs"},
		{"unknown key", "colour: blue\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(writeConfig(t, tt.content))
			var invalid *InvalidError
			require.True(t, errors.As(err, &invalid), "error = %v", err)
			require.NotEmpty(t, invalid.Issues)
			assert.Equal(t, tt.path, invalid.Issues[0].Path)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestOpenMalformedYAML(t *testing.T) {
	_, err := Open(writeConfig(t, "author: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML")
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "author: From File\nstyle: true\n")
	t.Setenv("MKPKG_AUTHOR", "From Env")
	t.Setenv("MKPKG_STYLE", "false")
	t.Setenv("MKPKG_SUPPORTS", "py37 pypy3")

	c, err := Open(path)
	require.NoError(t, err)

	d := c.Defaults()
	assert.Equal(t, "From Env", d.Author)
	require.NotNil(t, d.Style)
	assert.False(t, *d.Style)
	assert.Equal(t, []string{"py37", "pypy3"}, d.Supports)
}

func TestSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	c, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, c.Set(KeyAuthor, "Jane Doe"))
	require.NoError(t, c.Set(KeySupports, "py38,py39"))
	require.NoError(t, c.Set(KeyInitVCS, "false"))
	assert.Equal(t, "Jane Doe", c.Get(KeyAuthor))

	reopened, err := Open(path)
	require.NoError(t, err)
	d := reopened.Defaults()
	assert.Equal(t, "Jane Doe", d.Author)
	assert.Equal(t, []string{"py38", "py39"}, d.Supports)
	require.NotNil(t, d.InitVCS)
	assert.False(t, *d.InitVCS)
}

func TestSetRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c, err := Open(path)
	require.NoError(t, err)

	assert.ErrorContains(t, c.Set("colour", "blue"), "unknown config key")
	assert.ErrorContains(t, c.Set(KeyDocs, "maybe"), "expects true or false")

	var invalid *InvalidError
	assert.ErrorAs(t, c.Set(KeyStatus, "finished"), &invalid)
	assert.ErrorAs(t, c.Set(KeyAuthorEmail, "not-an-email"), &invalid)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "rejected values must not create the file")
}

func TestFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".mkpkg", "config.yaml"), FilePath())
}
