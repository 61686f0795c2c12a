package plan

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/grayvines/mkpkg/internal/options"
)

// Classifiers returns the trove classifiers for the generated setup.cfg.
//
// Order: development status, OS and generic language classifiers, the
// license (open projects only), one classifier per distinct language version
// in tag order, the major-version classifiers, CPython, then one classifier
// per alternate implementation present.
func Classifiers(o *options.GenerationOptions) []string {
	out := []string{
		statusClassifiers[o.Status],
		classifierOSIndep,
		classifierPython,
	}
	if !o.Closed {
		out = append(out, classifierMIT)
	}

	var versions []string
	for _, tag := range o.Supports {
		v, ok := languageVersions[tag]
		if !ok {
			continue
		}
		c := classifierVersionBase + v
		if !slices.Contains(versions, c) {
			versions = append(versions, c)
		}
	}
	slices.SortStableFunc(versions, compareClassifierVersions)
	out = append(out, versions...)

	if supportsPython2(o.Supports) {
		out = append(out, classifierPython2)
	}
	if supportsPython3(o.Supports) {
		out = append(out, classifierPython3)
	}
	out = append(out, classifierCPython)

	for _, tag := range o.Supports {
		impl, ok := implementations[tag]
		if ok && !slices.Contains(out, impl) {
			out = append(out, impl)
		}
	}
	return out
}

// PythonRequires returns a python_requires specifier admitting the lowest
// supported language version, e.g. ">=2.7".
func PythonRequires(supports []string) (string, error) {
	var lowest *semver.Version
	for _, tag := range supports {
		raw, ok := languageVersions[tag]
		if !ok {
			continue
		}
		v, err := semver.NewVersion(raw)
		if err != nil {
			return "", fmt.Errorf("parsing language version %q for %s: %w", raw, tag, err)
		}
		if lowest == nil || v.LessThan(lowest) {
			lowest = v
		}
	}
	if lowest == nil {
		return "", nil
	}
	return fmt.Sprintf(">=%d.%d", lowest.Major(), lowest.Minor()), nil
}

func supportsPython2(supports []string) bool {
	for _, tag := range supports {
		if strings.HasPrefix(tag, "py2") || tag == "pypy" || tag == "jython" {
			return true
		}
	}
	return false
}

func supportsPython3(supports []string) bool {
	for _, tag := range supports {
		if strings.HasPrefix(tag, "py3") || tag == "pypy3" {
			return true
		}
	}
	return false
}

// compareClassifierVersions orders "Programming Language :: Python :: X.Y"
// classifiers by version so 3.10 sorts after 3.9.
func compareClassifierVersions(a, b string) int {
	va, errA := semver.NewVersion(strings.TrimPrefix(a, classifierVersionBase))
	vb, errB := semver.NewVersion(strings.TrimPrefix(b, classifierVersionBase))
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return va.Compare(vb)
}
