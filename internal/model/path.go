// Package model defines the data structures of the architecture graph.
package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// separators are trimmed from both ends of qualified names before matching.
const separators = `\/.`

// Location is anything that can be placed inside a Path: it has a qualified
// name and a file it was declared in.
type Location interface {
	QualifiedName() string
	SourcePath() string
}

// Path matches locations by qualified-name prefix, filesystem prefix or both.
// It is a value type: two paths with the same prefixes are equal.
type Path struct {
	Namespace string `mapstructure:"namespace" yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Directory string `mapstructure:"path" yaml:"path,omitempty" json:"path,omitempty"`
}

// NamespacePath builds a Path matching a qualified-name prefix only.
func NamespacePath(namespace string) Path {
	return Path{Namespace: namespace}
}

// DirectoryPath builds a Path matching a filesystem prefix only.
func DirectoryPath(dir string) Path {
	return Path{Directory: dir}
}

// IsZero reports whether the path has no prefix at all and so matches nothing.
func (p Path) IsZero() bool {
	return p.Namespace == "" && p.Directory == ""
}

// IsPartOf reports whether loc lies inside p.
//
// Both checks are plain case-insensitive prefix tests: "/a/b" contains
// "/a/bc". A missing prefix skips its check.
func (p Path) IsPartOf(loc Location) bool {
	if p.Namespace != "" {
		namespace := strings.Trim(p.Namespace, separators)
		name := strings.Trim(loc.QualifiedName(), separators)

		if namespace != "" && hasPrefixFold(name, namespace) {
			return true
		}
	}

	if p.Directory != "" && hasPrefixFold(loc.SourcePath(), p.Directory) {
		return true
	}

	return false
}

// ContainsPath reports whether a bare filesystem path lies inside p's
// directory prefix. Namespaces are ignored.
func (p Path) ContainsPath(path string) bool {
	return p.Directory != "" && hasPrefixFold(path, p.Directory)
}

// String renders the path for reports and logs.
func (p Path) String() string {
	switch {
	case p.Namespace != "" && p.Directory != "":
		return p.Namespace + " (" + p.Directory + ")"
	case p.Namespace != "":
		return p.Namespace
	default:
		return p.Directory
	}
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(fold(s), fold(prefix))
}

// fold normalises to NFC and case-folds, so that "Ä" typed by hand matches
// a decomposed "A\u0308" read from a macOS filesystem.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
