package model

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnitID is the stable arena index of a unit of code inside one graph.
type UnitID int

// UnitKind is the syntactic category of a unit of code.
type UnitKind string

const (
	// KindInterface is an interface type declaration.
	KindInterface UnitKind = "interface"
	// KindStruct is a struct type declaration.
	KindStruct UnitKind = "struct"
	// KindType is any other named type (func types, maps, aliases...).
	KindType UnitKind = "type"
	// KindFunc is a top-level function or a method.
	KindFunc UnitKind = "func"
	// KindConst is a package-level constant.
	KindConst UnitKind = "const"
	// KindVar is a package-level variable.
	KindVar UnitKind = "var"
	// KindPrimitive is a predeclared Go type or identifier.
	KindPrimitive UnitKind = "primitive"
	// KindUnknown is a referenced name the scanner never saw declared.
	KindUnknown UnitKind = "unknown"
)

// UnitSpec is what the scanner reports for one declaration: identity,
// metadata and the raw names it references.
type UnitSpec struct {
	Package      string // import path of the declaring package, if known
	Name         string // qualified, e.g. example.com/app/core.Service
	Short        string
	Path         FilePath
	Kind         UnitKind
	Abstract     *bool
	Exported     bool
	Dependencies []string
}

// UnitOfCode is one analyzable symbol with its resolved dependency edges.
//
// Units are owned by the graph that created them; modules only index them by
// ID. Module is the name of the module the unit was resolved to and is set
// exactly once, when the graph is sealed.
type UnitOfCode struct {
	ID            UnitID
	Package       string
	Name          string
	Short         string
	Path          FilePath
	Kind          UnitKind
	Abstract      *bool // nil when abstractness does not apply
	Exported      bool
	Primitiveness float64
	Inputs        IDSet // units depending on this one
	Outputs       IDSet // units this one depends on
	Module        string
}

// QualifiedName implements Location.
func (u *UnitOfCode) QualifiedName() string {
	return u.Name
}

// SourcePath implements Location.
func (u *UnitOfCode) SourcePath() string {
	return string(u.Path)
}

// IsPrimitive reports whether the unit is a built-in type or identifier.
func (u *UnitOfCode) IsPrimitive() bool {
	return u.Kind == KindPrimitive
}

// Scope returns the qualified-name scope of the unit: the package import
// path for Go symbols, "" for unqualified names.
func (u *UnitOfCode) Scope() string {
	scope, _ := u.split()
	return scope
}

// split prefers the recorded package over guessing the scope from the name.
func (u *UnitOfCode) split() (scope, symbol string) {
	if u.Package != "" && strings.HasPrefix(u.Name, u.Package+".") {
		return u.Package, u.Name[len(u.Package)+1:]
	}

	return SplitQualifiedName(u.Name)
}

// BelongsToGlobalScope reports whether the unit has no qualified-name scope.
func (u *UnitOfCode) BelongsToGlobalScope() bool {
	return !u.IsPrimitive() && u.Scope() == ""
}

// BelongsTo reports whether the unit was resolved to the named module.
func (u *UnitOfCode) BelongsTo(module string) bool {
	return u.Module == module
}

// SlashName is the qualified name with the symbol part turned into path
// segments, so that glob patterns can address package paths and symbols
// uniformly: example.com/app/core.Service.Run -> example.com/app/core/Service/Run.
func (u *UnitOfCode) SlashName() string {
	scope, symbol := u.split()
	symbol = strings.ReplaceAll(symbol, ".", "/")

	if scope == "" {
		return symbol
	}

	return scope + "/" + symbol
}

// SplitQualifiedName splits "example.com/app/core.Service.Run" into the
// scope "example.com/app/core" and the symbol "Service.Run". Dots before the
// last slash belong to the scope, and so do dotted version suffixes of the
// last path element: gopkg.in/yaml.v3.Node splits into gopkg.in/yaml.v3 and
// Node.
func SplitQualifiedName(name string) (scope, symbol string) {
	name = strings.Trim(name, separators)
	lastSlash := strings.LastIndexAny(name, `/\`)

	parts := strings.Split(name[lastSlash+1:], ".")
	if len(parts) == 1 {
		if lastSlash < 0 {
			return "", name
		}

		return name[:lastSlash], name[lastSlash+1:]
	}

	scopeParts := 1
	for i := len(parts) - 2; i > 0; i-- {
		if isVersionSuffix(parts[i]) {
			scopeParts = i + 1
			break
		}
	}

	cut := lastSlash + 1 + len(strings.Join(parts[:scopeParts], "."))

	return name[:cut], name[cut+1:]
}

// isVersionSuffix matches gopkg.in style major versions such as v3.
func isVersionSuffix(part string) bool {
	if len(part) < 2 || part[0] != 'v' {
		return false
	}

	for _, r := range part[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// ShortName returns the last symbol segment of a qualified name.
func ShortName(name string) string {
	_, symbol := SplitQualifiedName(name)
	if i := strings.LastIndexByte(symbol, '.'); i >= 0 {
		return symbol[i+1:]
	}

	return symbol
}

// IsExportedName reports whether a Go identifier is exported.
func IsExportedName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// IDSet is a set of unit IDs. The zero value is ready to use.
type IDSet struct {
	ids map[UnitID]struct{}
}

// Add inserts id; adding an existing id is a no-op.
func (s *IDSet) Add(id UnitID) {
	if s.ids == nil {
		s.ids = make(map[UnitID]struct{})
	}

	s.ids[id] = struct{}{}
}

// Remove deletes id from the set.
func (s *IDSet) Remove(id UnitID) {
	delete(s.ids, id)
}

// Has reports whether id is in the set.
func (s IDSet) Has(id UnitID) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int {
	return len(s.ids)
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []UnitID {
	ids := make([]UnitID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}
