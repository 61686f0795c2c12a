package options

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"widgets", "widgets"},
		{"python-widgets", "widgets"},
		{"Python-Widgets", "python_widgets"},
		{"python-Foo-Bar", "foo_bar"},
		{"my-cool-pkg", "my_cool_pkg"},
		{"pythonic", "pythonic"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PackageName(tt.name), "PackageName(%q)", tt.name)
	}
}

func TestPackageNamePrefixIsIrrelevant(t *testing.T) {
	for _, name := range []string{"widgets", "Foo-Bar", "a-b-c", "UPPER"} {
		assert.Equal(t, PackageName(name), PackageName("python-"+name))
		assert.Equal(t, strings.ReplaceAll(strings.ToLower(name), "-", "_"), PackageName(name))
	}
}

func TestNewDefaults(t *testing.T) {
	opts, err := New(Input{Name: "python-widgets", Author: "Jane Doe"})
	require.NoError(t, err)

	assert.Equal(t, "widgets", opts.PackageName)
	assert.Equal(t, RunnerTrial, opts.TestRunner)
	assert.Equal(t, "alpha", opts.Status)
	assert.Equal(t, []string{"py36", "py37", "pypy", "pypy3"}, opts.Supports)
	assert.Equal(t, "Julian+widgets@GrayVines.com", opts.Email())
}

func TestNewSortsAndDeduplicatesSupports(t *testing.T) {
	opts, err := New(Input{Name: "x", Author: "a", Supports: []string{"pypy3", "py27", "py36", "py27"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"py27", "py36", "pypy3"}, opts.Supports)
	assert.True(t, opts.Supported("py27"))
	assert.False(t, opts.Supported("py35"))
}

func TestNewExplicitEmail(t *testing.T) {
	opts, err := New(Input{Name: "x", Author: "a", AuthorEmail: "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", opts.Email())
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		desc string
		in   Input
		want string
	}{
		{"single with several CLIs", Input{Name: "gizmo", Single: true, CLIs: []string{"a", "b"}}, "multiple CLIs"},
		{"empty name", Input{}, "project name"},
		{"prefix only", Input{Name: "python-"}, "package name"},
		{"unknown runner", Input{Name: "x", TestRunner: "nose"}, "test runner"},
		{"unknown status", Input{Name: "x", Status: "done"}, "status"},
		{"unknown runtime", Input{Name: "x", Supports: []string{"py26"}}, "runtime"},
		{"duplicate CLI", Input{Name: "x", CLIs: []string{"a", "a"}}, "more than once"},
		{"blank CLI", Input{Name: "x", CLIs: []string{" "}}, "must not be empty"},
		{"CLI with a dot", Input{Name: "x", CLIs: []string{"my.tool"}}, "Python module name"},
		{"CLI starting with a digit", Input{Name: "x", CLIs: []string{"2fa"}}, "Python module name"},
		{"CLIs sharing a module", Input{Name: "x", CLIs: []string{"my-tool", "my_tool"}}, "share the module name"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			tt.in.Author = "someone"
			_, err := New(tt.in)
			require.ErrorIs(t, err, ErrUsageConflict)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewAcceptsHyphenatedCLI(t *testing.T) {
	opts, err := New(Input{Name: "proj", Author: "a", CLIs: []string{"my-tool", "other"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"my-tool", "other"}, opts.CLIs)
}

func TestModuleName(t *testing.T) {
	assert.Equal(t, "my_tool", ModuleName("my-tool"))
	assert.Equal(t, "gizmo", ModuleName("gizmo"))
}

func TestNewSingleWithOneCLI(t *testing.T) {
	opts, err := New(Input{Name: "gizmo", Author: "a", Single: true, CLIs: []string{"gizmo"}})
	require.NoError(t, err)
	assert.True(t, opts.Single)
	assert.Len(t, opts.CLIs, 1)
}

func TestNewCopiesSlices(t *testing.T) {
	clis := []string{"a"}
	opts, err := New(Input{Name: "x", Author: "a", CLIs: clis})
	require.NoError(t, err)

	clis[0] = "changed"
	assert.Equal(t, "a", opts.CLIs[0], "GenerationOptions shares the caller's CLIs slice")
}
