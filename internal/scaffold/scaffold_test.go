package scaffold

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grayvines/mkpkg/internal/options"
	"github.com/grayvines/mkpkg/internal/plan"
)

func buildPlan(t *testing.T, in options.Input) *plan.Plan {
	t.Helper()
	in.Author = "Jane Doe"
	o, err := options.New(in)
	require.NoError(t, err)
	p, err := plan.Build(o, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWritePackage(t *testing.T) {
	dir := t.TempDir()
	p := buildPlan(t, options.Input{Name: "python-widgets"})

	result, err := Write(dir, p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "python-widgets"), result.OutputDir)

	for _, rel := range []string{
		"widgets/__init__.py",
		"widgets/tests/__init__.py",
		"README.rst",
		"COPYING",
		"setup.cfg",
		"tox.ini",
		".travis.yml",
		"codecov.yml",
	} {
		assert.FileExists(t, filepath.Join(dir, "python-widgets", rel))
	}
	assert.Len(t, result.Files, len(p.Targets()))
}

func TestWriteSingleModule(t *testing.T) {
	dir := t.TempDir()
	p := buildPlan(t, options.Input{Name: "gizmo", Single: true, CLIs: []string{"gizmo"}})

	_, err := Write(dir, p)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "gizmo", "gizmo.py"))
	assert.FileExists(t, filepath.Join(dir, "gizmo", "tests.py"))
	assert.NoDirExists(t, filepath.Join(dir, "gizmo", "gizmo"))
	assert.Contains(t, readFile(t, filepath.Join(dir, "gizmo", "gizmo.py")), "def main():")
}

func TestWriteExistingRoot(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "proj")
	require.NoError(t, os.Mkdir(root, 0o755))
	sentinel := filepath.Join(root, "setup.cfg")
	require.NoError(t, os.WriteFile(sentinel, []byte("untouched"), 0o644))

	_, err := Write(dir, buildPlan(t, options.Input{Name: "proj"}))
	require.ErrorIs(t, err, ErrExists)
	assert.Contains(t, err.Error(), "already exists")

	assert.Equal(t, "untouched", readFile(t, sentinel))
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteBare(t *testing.T) {
	dir := t.TempDir()
	p := buildPlan(t, options.Input{Name: "proj", Bare: true, CLIs: []string{"proj"}})

	result, err := Write(dir, p)
	require.NoError(t, err)
	assert.Equal(t, dir, result.OutputDir)

	for _, rel := range []string{
		"proj/__init__.py",
		"proj/tests/__init__.py",
		"proj/_cli.py",
		"proj/__main__.py",
	} {
		assert.FileExists(t, filepath.Join(dir, rel))
	}
	for _, rel := range []string{"README.rst", "COPYING", "setup.cfg", "proj/setup.cfg"} {
		assert.NoFileExists(t, filepath.Join(dir, rel), "bare mode")
	}
}

func TestWriteBareIntoExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "proj"), 0o755))

	_, err := Write(dir, buildPlan(t, options.Input{Name: "proj", Bare: true}))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "proj", "__init__.py"))
}

func TestWriteDirectoryCreationFailure(t *testing.T) {
	dir := t.TempDir()
	// A file where the package directory should go.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proj"), nil, 0o644))

	_, err := Write(dir, buildPlan(t, options.Input{Name: "proj", Bare: true}))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrExists)
}

func TestDedent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"\n    a\n    b\n", "a\nb\n"},
		{"\n\n  a\n    b\n", "a\n  b\n"},
		{"a\n    b\n", "a\n    b\n"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Dedent(tt.in), "Dedent(%q)", tt.in)
	}
}
