// Package ini renders ordered INI documents in the layout Python's
// configparser writes: "key = value" pairs, list values as indented
// continuation lines, and sections separated by a blank line.
package ini

import (
	"errors"
	"fmt"
	"strings"

	goini "gopkg.in/ini.v1"
)

// ErrDuplicateSection is returned when a section name is added twice.
var ErrDuplicateSection = errors.New("duplicate section")

const indent = "    "

// Value is either a scalar string or an ordered list of strings.
type Value struct {
	items []string
	list  bool
}

// Scalar returns a single-line value.
func Scalar(s string) Value { return Value{items: []string{s}} }

// List returns a multi-line value rendered one item per line.
func List(items ...string) Value {
	return Value{items: append([]string(nil), items...), list: true}
}

// IsList reports whether v renders as a block of continuation lines.
func (v Value) IsList() bool { return v.list }

// Items returns the list items, or the scalar as a one-element slice.
func (v Value) Items() []string { return append([]string(nil), v.items...) }

// String returns the value as configparser stores it: lists start with a
// newline and join their items with newlines.
func (v Value) String() string {
	if v.list {
		return "\n" + strings.Join(v.items, "\n")
	}
	if len(v.items) == 0 {
		return ""
	}
	return v.items[0]
}

// Option is a single key/value pair.
type Option struct {
	Key   string
	Value Value
}

// Set builds a scalar option.
func Set(key, value string) Option { return Option{Key: key, Value: Scalar(value)} }

// Lines builds a list option.
func Lines(key string, items ...string) Option { return Option{Key: key, Value: List(items...)} }

// Section is a named, ordered group of options.
type Section struct {
	Name    string
	Options []Option
}

// Document is an ordered sequence of uniquely named sections.
type Document struct {
	sections []Section
	index    map[string]int
}

// New returns an empty document.
func New() *Document {
	return &Document{index: make(map[string]int)}
}

// AddSection appends a section. Adding a name that already exists fails.
func (d *Document) AddSection(name string, opts ...Option) error {
	if _, ok := d.index[name]; ok {
		return fmt.Errorf("%w: [%s]", ErrDuplicateSection, name)
	}
	d.index[name] = len(d.sections)
	d.sections = append(d.sections, Section{Name: name})
	for _, opt := range opts {
		if err := d.Set(name, opt.Key, opt.Value); err != nil {
			return err
		}
	}
	return nil
}

// Set assigns key in an existing section, replacing any earlier value in place.
func (d *Document) Set(section, key string, v Value) error {
	i, ok := d.index[section]
	if !ok {
		return fmt.Errorf("no section [%s]", section)
	}
	s := &d.sections[i]
	for j := range s.Options {
		if s.Options[j].Key == key {
			s.Options[j].Value = v
			return nil
		}
	}
	s.Options = append(s.Options, Option{Key: key, Value: v})
	return nil
}

// Get returns the value of key in section.
func (d *Document) Get(section, key string) (Value, bool) {
	i, ok := d.index[section]
	if !ok {
		return Value{}, false
	}
	for _, opt := range d.sections[i].Options {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return Value{}, false
}

// Sections returns the section names in document order.
func (d *Document) Sections() []string {
	names := make([]string, len(d.sections))
	for i, s := range d.sections {
		names[i] = s.Name
	}
	return names
}

// String serializes the document. Output depends only on the document's
// contents and their order.
func (d *Document) String() string {
	var b strings.Builder
	for _, s := range d.sections {
		b.WriteString("[" + s.Name + "]\n")
		for _, opt := range s.Options {
			value := strings.ReplaceAll(opt.Value.String(), "\n", "\n\t")
			b.WriteString(opt.Key + " = " + value + "\n")
		}
		b.WriteString("\n")
	}

	out := b.String()
	out = strings.ReplaceAll(out, "\t", indent)
	out = strings.ReplaceAll(out, "= \n", "=\n")
	return strings.TrimSuffix(out, "\n")
}

// Render builds a document from sections and serializes it.
func Render(sections ...Section) (string, error) {
	d := New()
	for _, s := range sections {
		if err := d.AddSection(s.Name, s.Options...); err != nil {
			return "", err
		}
	}
	return d.String(), nil
}

// Parse reads INI text with Python-style continuation lines back into a
// Document. Values spanning several lines come back as lists with blank
// lines dropped.
func Parse(text string) (*Document, error) {
	f, err := goini.LoadSources(goini.LoadOptions{
		AllowPythonMultilineValues: true,
		IgnoreInlineComment:        true,
		PreserveSurroundedQuote:    true,
		KeyValueDelimiters:         "=",
	}, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("parsing ini: %w", err)
	}

	d := New()
	for _, s := range f.Sections() {
		if s.Name() == goini.DefaultSection && len(s.Keys()) == 0 {
			continue
		}
		if err := d.AddSection(s.Name()); err != nil {
			return nil, err
		}
		for _, k := range s.Keys() {
			raw := k.Value()
			v := Scalar(raw)
			if strings.Contains(raw, "\n") {
				var items []string
				for _, line := range strings.Split(raw, "\n") {
					if line = strings.TrimSpace(line); line != "" {
						items = append(items, line)
					}
				}
				v = List(items...)
			}
			if err := d.Set(s.Name(), k.Name(), v); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}
