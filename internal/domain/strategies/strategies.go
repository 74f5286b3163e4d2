// Package strategies extracts referenced type names from documentation
// comments. Each strategy handles one annotation tag, e.g.
//
//	// @param Repository|Cache repo
//	// @return []Order
//
// yields "Repository", "Cache" and "Order". Names are returned raw: pointer
// stars and package qualifiers are left for the caller to resolve.
package strategies

import (
	"regexp"
	"strings"
	"unicode"
)

// Strategy turns a blob of source text into referenced type names.
type Strategy interface {
	Parse(content string) []string
}

// typeList matches one or more type names joined by '|'.
const typeList = `((?:[\w\[\]\\./*]+\s*\|\s*)*[\w\[\]\\./*]+)`

var (
	paramPattern  = annotation("param")
	returnPattern = annotation("return")
	varPattern    = annotation("var")
	throwsPattern = annotation("throws")
)

func annotation(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)@` + tag + `\s+` + typeList)
}

// ParamAnnotations reads the types of @param annotations.
type ParamAnnotations struct{}

// Parse implements Strategy.
func (ParamAnnotations) Parse(content string) []string {
	return parse(paramPattern, content)
}

// ReturnAnnotations reads the types of @return annotations.
type ReturnAnnotations struct{}

// Parse implements Strategy.
func (ReturnAnnotations) Parse(content string) []string {
	return parse(returnPattern, content)
}

// VarAnnotations reads the types of @var annotations.
type VarAnnotations struct{}

// Parse implements Strategy.
func (VarAnnotations) Parse(content string) []string {
	return parse(varPattern, content)
}

// ThrowsAnnotations reads the error types of @throws annotations.
type ThrowsAnnotations struct{}

// Parse implements Strategy.
func (ThrowsAnnotations) Parse(content string) []string {
	return parse(throwsPattern, content)
}

// Default returns every annotation strategy.
func Default() []Strategy {
	return []Strategy{ParamAnnotations{}, ReturnAnnotations{}, VarAnnotations{}, ThrowsAnnotations{}}
}

// Union runs all strategies over content and merges their results, keeping
// the first occurrence of each name.
func Union(content string, strategies ...Strategy) []string {
	var names []string

	seen := make(map[string]struct{})

	for _, strategy := range strategies {
		for _, name := range strategy.Parse(content) {
			if _, ok := seen[name]; ok {
				continue
			}

			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names
}

func parse(pattern *regexp.Regexp, content string) []string {
	var names []string

	seen := make(map[string]struct{})

	for _, match := range pattern.FindAllStringSubmatch(content, -1) {
		types := strings.ReplaceAll(removeSpaces(match[1]), "[]", "")

		for _, name := range strings.Split(types, "|") {
			if name == "" {
				continue
			}

			if _, ok := seen[name]; ok {
				continue
			}

			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names
}

func removeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
