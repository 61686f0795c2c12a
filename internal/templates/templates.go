// Package templates holds the embedded bodies of the generated project files
// and renders them. Bodies ending in .tmpl are Go text/templates executed
// against caller-supplied data; everything else is returned verbatim.
// Rendering has no side effects.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"
	"unicode/utf8"
)

//go:embed all:files
var templateFS embed.FS

const (
	rootDir = "files"
	tmplExt = ".tmpl"
)

// Template identifiers, relative to the embedded root without the .tmpl suffix.
const (
	Readme             = "README.rst"
	Copying            = "COPYING"
	Manifest           = "MANIFEST.in"
	SetupPy            = "setup.py"
	TestrConf          = ".testr.conf"
	Codecov            = "codecov.yml"
	DocsRequirements   = "docs/requirements.txt"
	DocsContents       = "docs/contents.rst"
	PackageInit        = "package/__init__.py"
	PackageCLI         = "package/_cli.py"
	PackageMain        = "package/__main__.py"
	SingleModuleScript = "single/module.py"
	SingleModuleTests  = "single/tests.py"
)

var funcs = template.FuncMap{
	// bar returns a row of "=" as wide as s, for reStructuredText titles.
	"bar": func(s string) string {
		return strings.Repeat("=", utf8.RuneCountInString(s))
	},
}

// Render returns the body of the template id. Templated bodies are executed
// against data and fail on any missing key; literal bodies ignore data.
func Render(id string, data any) (string, error) {
	raw, err := fs.ReadFile(templateFS, path.Join(rootDir, id+tmplExt))
	if err != nil {
		return Literal(id)
	}

	tmpl, err := template.New(id).Funcs(funcs).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", id, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", id, err)
	}
	return buf.String(), nil
}

// Literal returns a template body that needs no substitution.
func Literal(id string) (string, error) {
	raw, err := fs.ReadFile(templateFS, path.Join(rootDir, id))
	if err != nil {
		return "", fmt.Errorf("template %q not found: %w", id, err)
	}
	return string(raw), nil
}

// List returns every template identifier in sorted order.
func List() ([]string, error) {
	var ids []string
	err := fs.WalkDir(templateFS, rootDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, rootDir+"/")
		ids = append(ids, strings.TrimSuffix(rel, tmplExt))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}
