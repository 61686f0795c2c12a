package plan

import (
	"fmt"
	"time"

	"github.com/grayvines/mkpkg/internal/options"
	"github.com/grayvines/mkpkg/internal/templates"
)

// Well-known scaffolding paths, relative to the project root.
const (
	ReadmePath           = "README.rst"
	CopyingPath          = "COPYING"
	ManifestPath         = "MANIFEST.in"
	SetupCfgPath         = "setup.cfg"
	SetupPyPath          = "setup.py"
	CoverageRCPath       = ".coveragerc"
	ToxPath              = "tox.ini"
	TestrPath            = ".testr.conf"
	TravisPath           = ".travis.yml"
	CodecovPath          = "codecov.yml"
	DocsRequirementsPath = "docs/requirements.txt"
	DocsDir              = "docs"
	DocsIndexPath        = "docs/index.rst"
)

// File is one planned output file. Path is slash-separated and relative.
type File struct {
	Path    string
	Content string
}

// Plan is the complete set of files for one generation run.
type Plan struct {
	// Root is the project directory, named after the project.
	Root string
	// Core holds the source and test files. They are written under Root,
	// or directly under the base directory in bare mode.
	Core []File
	// Scaffolding holds the project-level files, relative to Root.
	Scaffolding []File
	// Bare suppresses Scaffolding and the project directory itself.
	Bare bool
	// Readme is the rendered README, reused for the documentation index.
	Readme string
}

// Targets returns the files to write, in write order. Paths are relative to
// the base directory: prefixed with Root unless the plan is bare.
func (p *Plan) Targets() []File {
	if p.Bare {
		return append([]File(nil), p.Core...)
	}
	out := make([]File, 0, len(p.Scaffolding)+len(p.Core))
	for _, f := range p.Scaffolding {
		out = append(out, File{Path: p.Root + "/" + f.Path, Content: f.Content})
	}
	for _, f := range p.Core {
		out = append(out, File{Path: p.Root + "/" + f.Path, Content: f.Content})
	}
	return out
}

// Paths returns the relative paths of Targets.
func (p *Plan) Paths() []string {
	targets := p.Targets()
	paths := make([]string, len(targets))
	for i, f := range targets {
		paths[i] = f.Path
	}
	return paths
}

// Build computes the plan for o. The copyright year is taken from now.
func Build(o *options.GenerationOptions, now time.Time) (*Plan, error) {
	layout := LayoutFor(o)

	core, err := layout.sources(o)
	if err != nil {
		return nil, fmt.Errorf("planning sources: %w", err)
	}

	readme, err := templates.Render(templates.Readme, map[string]any{
		"Name":     o.Name,
		"Contents": o.Readme,
	})
	if err != nil {
		return nil, err
	}

	p := &Plan{
		Root:   o.Name,
		Core:   core,
		Bare:   o.Bare,
		Readme: readme,
	}
	if o.Bare {
		return p, nil
	}

	copying, err := templates.Render(templates.Copying, map[string]any{
		"Year":   now.Year(),
		"Author": o.Author,
		"Closed": o.Closed,
	})
	if err != nil {
		return nil, err
	}
	setup, err := setupCfg(o, layout)
	if err != nil {
		return nil, fmt.Errorf("planning %s: %w", SetupCfgPath, err)
	}
	tox, err := toxINI(o, layout)
	if err != nil {
		return nil, fmt.Errorf("planning %s: %w", ToxPath, err)
	}
	coverage, err := coverageRC(o)
	if err != nil {
		return nil, fmt.Errorf("planning %s: %w", CoverageRCPath, err)
	}

	p.Scaffolding = []File{
		{Path: ReadmePath, Content: readme},
		{Path: CopyingPath, Content: copying},
	}
	if err := p.addLiteral(ManifestPath, templates.Manifest); err != nil {
		return nil, err
	}
	p.Scaffolding = append(p.Scaffolding, File{Path: SetupCfgPath, Content: setup})
	if err := p.addLiteral(SetupPyPath, templates.SetupPy); err != nil {
		return nil, err
	}
	p.Scaffolding = append(p.Scaffolding,
		File{Path: CoverageRCPath, Content: coverage},
		File{Path: ToxPath, Content: tox},
	)
	if err := p.addLiteral(TestrPath, templates.TestrConf); err != nil {
		return nil, err
	}

	if o.Docs {
		if err := p.addLiteral(DocsRequirementsPath, templates.DocsRequirements); err != nil {
			return nil, err
		}
	}

	if !o.Closed {
		travis, err := travisYAML(o)
		if err != nil {
			return nil, err
		}
		p.Scaffolding = append(p.Scaffolding, File{Path: TravisPath, Content: travis})
		if err := p.addLiteral(CodecovPath, templates.Codecov); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Plan) addLiteral(path, id string) error {
	content, err := templates.Literal(id)
	if err != nil {
		return fmt.Errorf("planning %s: %w", path, err)
	}
	p.Scaffolding = append(p.Scaffolding, File{Path: path, Content: content})
	return nil
}

// DocsIndex returns the documentation index written after the docs tool
// has run: the README followed by a table of contents stub.
func (p *Plan) DocsIndex() (string, error) {
	contents, err := templates.Literal(templates.DocsContents)
	if err != nil {
		return "", err
	}
	return p.Readme + "\n\n" + contents, nil
}
