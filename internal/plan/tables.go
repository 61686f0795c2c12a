package plan

import "github.com/grayvines/mkpkg/internal/options"

// statusClassifiers maps --status values to trove classifiers.
var statusClassifiers = map[string]string{
	"planning": "Development Status :: 1 - Planning",
	"prealpha": "Development Status :: 2 - Pre-Alpha",
	"alpha":    "Development Status :: 3 - Alpha",
	"beta":     "Development Status :: 4 - Beta",
	"stable":   "Development Status :: 5 - Production/Stable",
	"mature":   "Development Status :: 6 - Mature",
	"inactive": "Development Status :: 7 - Inactive",
}

// languageVersions maps runtime tags to the language version they run.
var languageVersions = map[string]string{
	"jython": "2.7",
	"py27":   "2.7",
	"py35":   "3.5",
	"py36":   "3.6",
	"py37":   "3.7",
	"py38":   "3.8",
	"py39":   "3.9",
	"pypy":   "2.7",
	"pypy3":  "3.6",
}

// implementations maps runtime tags of alternate interpreters to their
// implementation classifier.
var implementations = map[string]string{
	"jython": "Programming Language :: Python :: Implementation :: Jython",
	"pypy":   "Programming Language :: Python :: Implementation :: PyPy",
	"pypy3":  "Programming Language :: Python :: Implementation :: PyPy",
}

// travisVersions maps runtime tags to Travis CI python entries. Tags
// Travis cannot run are absent.
var travisVersions = map[string]string{
	"py27":  "2.7",
	"py35":  "3.5",
	"py36":  "3.6",
	"py37":  "3.7",
	"py38":  "3.8",
	"py39":  "3.9",
	"pypy":  "pypy",
	"pypy3": "pypy3",
}

// testDeps lists the tox dependencies each test runner needs.
var testDeps = map[options.TestRunner][]string{
	options.RunnerPytest: {"pytest"},
	options.RunnerTrial:  {"twisted"},
}

const (
	classifierPython      = "Programming Language :: Python"
	classifierPython2     = "Programming Language :: Python :: 2"
	classifierPython3     = "Programming Language :: Python :: 3"
	classifierCPython     = "Programming Language :: Python :: Implementation :: CPython"
	classifierOSIndep     = "Operating System :: OS Independent"
	classifierMIT         = "License :: OSI Approved :: MIT License"
	classifierVersionBase = "Programming Language :: Python :: "
)
