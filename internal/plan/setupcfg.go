package plan

import (
	"github.com/grayvines/mkpkg/internal/branding"
	"github.com/grayvines/mkpkg/internal/ini"
	"github.com/grayvines/mkpkg/internal/options"
)

// setupCfg renders the declarative setuptools metadata.
func setupCfg(o *options.GenerationOptions, layout Layout) (string, error) {
	metadata := ini.Section{Name: "metadata", Options: []ini.Option{
		ini.Set("name", o.Name),
		ini.Set("url", branding.ProjectURL(o.Name)),
		ini.Set("description", ""),
		ini.Set("long_description", "file: README.rst"),
		ini.Set("long_description_content_type", "text/x-rst"),
		ini.Set("author", o.Author),
		ini.Set("author_email", o.Email()),
		ini.Lines("classifiers", Classifiers(o)...),
	}}

	opts := ini.Section{Name: "options", Options: []ini.Option{
		layout.contents(o),
		ini.Set("setup_requires", "setuptools_scm"),
	}}
	requires, err := PythonRequires(o.Supports)
	if err != nil {
		return "", err
	}
	if requires != "" {
		opts.Options = append(opts.Options, ini.Set("python_requires", requires))
	}

	sections := []ini.Section{metadata, opts}

	scripts := layout.consoleScripts(o)
	if len(scripts) > 0 {
		sections[1].Options = append(sections[1].Options, ini.Set("install_requires", "click"))

		entry := ini.Lines("console_scripts", scripts...)
		if len(scripts) == 1 {
			entry = ini.Set("console_scripts", scripts[0])
		}
		sections = append(sections, ini.Section{
			Name:    "options.entry_points",
			Options: []ini.Option{entry},
		})
	}

	if supportsPython2(o.Supports) && supportsPython3(o.Supports) {
		sections = append(sections, ini.Section{
			Name:    "bdist_wheel",
			Options: []ini.Option{ini.Set("universal", "1")},
		})
	}

	return ini.Render(sections...)
}

// coverageRC renders the coverage.py configuration.
func coverageRC(o *options.GenerationOptions) (string, error) {
	return ini.Render(
		ini.Section{Name: "run", Options: []ini.Option{
			ini.Set("branch", "True"),
			ini.Set("source", o.PackageName),
			ini.Set("dynamic_context", "test_function"),
		}},
		ini.Section{Name: "report", Options: []ini.Option{
			ini.Lines("exclude_lines", "pragma: no cover"),
			ini.Set("show_missing", "True"),
		}},
	)
}
