package ini

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ScalarAndList(t *testing.T) {
	got, err := Render(
		Section{Name: "metadata", Options: []Option{
			Set("name", "widgets"),
			Lines("classifiers", "A", "B"),
		}},
		Section{Name: "options", Options: []Option{
			Set("packages", "find:"),
		}},
	)
	require.NoError(t, err)

	want := "[metadata]\n" +
		"name = widgets\n" +
		"classifiers =\n" +
		"    A\n" +
		"    B\n" +
		"\n" +
		"[options]\n" +
		"packages = find:\n"
	assert.Equal(t, want, got)
}

func TestRender_EmptyValueHasNoTrailingSpace(t *testing.T) {
	got, err := Render(Section{Name: "metadata", Options: []Option{Set("description", "")}})
	require.NoError(t, err)
	assert.Equal(t, "[metadata]\ndescription =\n", got)
	assert.NotContains(t, got, "= \n")
}

func TestRender_TabsBecomeSpaces(t *testing.T) {
	got, err := Render(Section{Name: "s", Options: []Option{Set("k", "a\tb")}})
	require.NoError(t, err)
	assert.Equal(t, "[s]\nk = a    b\n", got)
	assert.NotContains(t, got, "\t")
}

func TestRender_Deterministic(t *testing.T) {
	sections := []Section{
		{Name: "tox", Options: []Option{Lines("envlist", "py36", "py37"), Set("skipsdist", "True")}},
		{Name: "testenv", Options: []Option{Lines("deps", "twisted")}},
	}
	first, err := Render(sections...)
	require.NoError(t, err)
	for range 10 {
		again, err := Render(sections...)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAddSection_Duplicate(t *testing.T) {
	d := New()
	require.NoError(t, d.AddSection("tox"))
	err := d.AddSection("tox")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateSection))

	_, err = Render(Section{Name: "a"}, Section{Name: "a"})
	assert.ErrorIs(t, err, ErrDuplicateSection)
}

func TestSet_ReplacesInPlace(t *testing.T) {
	d := New()
	require.NoError(t, d.AddSection("s", Set("a", "1"), Set("b", "2")))
	require.NoError(t, d.Set("s", "a", Scalar("3")))

	assert.Equal(t, "[s]\na = 3\nb = 2\n", d.String())
	assert.Error(t, d.Set("missing", "a", Scalar("1")))
}

func TestGet(t *testing.T) {
	d := New()
	require.NoError(t, d.AddSection("s", Lines("k", "x", "y")))

	v, ok := d.Get("s", "k")
	require.True(t, ok)
	assert.True(t, v.IsList())
	assert.Equal(t, []string{"x", "y"}, v.Items())

	_, ok = d.Get("s", "missing")
	assert.False(t, ok)
	_, ok = d.Get("nope", "k")
	assert.False(t, ok)
}

func TestParse_RoundTripsLists(t *testing.T) {
	text, err := Render(Section{Name: "sec", Options: []Option{Lines("key", "a", "b")}})
	require.NoError(t, err)

	d, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"sec"}, d.Sections())

	v, ok := d.Get("sec", "key")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v.Items())
}

func TestParse_Scalars(t *testing.T) {
	d, err := Parse("[options.entry_points]\nconsole_scripts = a = proj._a:main\n")
	require.NoError(t, err)

	v, ok := d.Get("options.entry_points", "console_scripts")
	require.True(t, ok)
	assert.False(t, v.IsList())
	assert.Equal(t, "a = proj._a:main", strings.TrimSpace(v.String()))
}
