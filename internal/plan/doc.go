// Package plan decides which files a new project contains and what each of
// them says. Build is a pure function of the generation options: it renders
// templates and INI/YAML documents into an ordered Plan and never touches the
// filesystem.
package plan
