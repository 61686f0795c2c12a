package plan

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/grayvines/mkpkg/internal/ini"
	"github.com/grayvines/mkpkg/internal/options"
	"github.com/grayvines/mkpkg/internal/templates"
)

// Layout is the shape of the generated source tree: either a single module
// or a package directory. The two implementations are the only ones.
type Layout interface {
	// sources returns the core source and test files.
	sources(o *options.GenerationOptions) ([]File, error)
	// consoleScripts returns the console_scripts entry point declarations.
	consoleScripts(o *options.GenerationOptions) []string
	// contents returns the setup.cfg [options] entry naming the code to ship.
	contents(o *options.GenerationOptions) ini.Option
	// testTarget returns what the test runner is pointed at in tox.ini.
	testTarget(o *options.GenerationOptions) string
	// lintTarget returns the path, relative to the project root, to lint.
	lintTarget(o *options.GenerationOptions) string
}

// SingleModule generates one <package>.py plus a tests.py beside it.
type SingleModule struct{}

// Package generates a <package>/ directory with a tests subpackage.
type Package struct{}

// LayoutFor picks the layout requested by o.
func LayoutFor(o *options.GenerationOptions) Layout {
	if o.Single {
		return SingleModule{}
	}
	return Package{}
}

func (SingleModule) sources(o *options.GenerationOptions) ([]File, error) {
	script := ""
	if len(o.CLIs) == 1 {
		var err error
		if script, err = templates.Literal(templates.SingleModuleScript); err != nil {
			return nil, err
		}
	}

	tests, err := templates.Render(templates.SingleModuleTests, map[string]any{
		"PackageName": o.PackageName,
		"ClassName":   className(o.PackageName),
	})
	if err != nil {
		return nil, err
	}

	return []File{
		{Path: o.PackageName + ".py", Content: script},
		{Path: "tests.py", Content: tests},
	}, nil
}

func (SingleModule) consoleScripts(o *options.GenerationOptions) []string {
	if len(o.CLIs) == 0 {
		return nil
	}
	return []string{fmt.Sprintf("%s = %s:main", o.CLIs[0], o.PackageName)}
}

func (SingleModule) contents(o *options.GenerationOptions) ini.Option {
	return ini.Set("py_modules", o.PackageName)
}

func (SingleModule) testTarget(*options.GenerationOptions) string {
	return "{toxinidir}/tests.py"
}

func (SingleModule) lintTarget(o *options.GenerationOptions) string {
	return o.PackageName + ".py"
}

func (Package) sources(o *options.GenerationOptions) ([]File, error) {
	initPy, err := templates.Literal(templates.PackageInit)
	if err != nil {
		return nil, err
	}

	pkg := o.PackageName
	files := []File{
		{Path: path.Join(pkg, "tests", "__init__.py"), Content: ""},
		{Path: path.Join(pkg, "__init__.py"), Content: initPy},
	}

	if len(o.CLIs) == 1 {
		cli, err := renderCLI(pkg, o.CLIs[0])
		if err != nil {
			return nil, err
		}
		mainPy, err := templates.Render(templates.PackageMain, map[string]any{"PackageName": pkg})
		if err != nil {
			return nil, err
		}
		return append(files,
			File{Path: path.Join(pkg, "_cli.py"), Content: cli},
			File{Path: path.Join(pkg, "__main__.py"), Content: mainPy},
		), nil
	}

	for _, name := range o.CLIs {
		cli, err := renderCLI(pkg, name)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: path.Join(pkg, "_"+options.ModuleName(name)+".py"), Content: cli})
	}
	return files, nil
}

func (Package) consoleScripts(o *options.GenerationOptions) []string {
	if len(o.CLIs) == 1 {
		return []string{fmt.Sprintf("%s = %s._cli:main", o.CLIs[0], o.PackageName)}
	}
	scripts := make([]string, 0, len(o.CLIs))
	for _, name := range o.CLIs {
		scripts = append(scripts, fmt.Sprintf("%s = %s._%s:main", name, o.PackageName, options.ModuleName(name)))
	}
	return scripts
}

func (Package) contents(*options.GenerationOptions) ini.Option {
	return ini.Set("packages", "find:")
}

func (Package) testTarget(o *options.GenerationOptions) string {
	return o.PackageName
}

func (Package) lintTarget(o *options.GenerationOptions) string {
	return o.PackageName
}

// className turns a package identifier into a CamelCase class name:
// my_tool becomes MyTool.
func className(packageName string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, part := range strings.Split(packageName, "_") {
		b.WriteString(caser.String(part))
	}
	return b.String()
}

func renderCLI(packageName, cli string) (string, error) {
	return templates.Render(templates.PackageCLI, map[string]any{
		"PackageName": packageName,
		"CLI":         cli,
	})
}
