package adapter

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"regexp"
	"strconv"
	"strings"

	"cleanarch.dev/pkg/cleanarch/internal/domain/strategies"
	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

// GoFileAdapter turns one Go source file into units of code so the domain
// layer never deals with the syntax tree.
type GoFileAdapter interface {
	// ScanFile parses src and returns one unit per top-level type, function,
	// const and var. Methods contribute their dependencies to the unit of
	// their receiver type. Names are qualified with importPath.
	ScanFile(fileSet *token.FileSet, filename m.FilePath, importPath string, src []byte) ([]m.UnitSpec, error)
}

// LocalGoFileAdapter provides a GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct {
	strategies []strategies.Strategy
}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter reading doc comments
// with the given strategies, or with all annotation strategies when none are
// given.
func NewLocalGoFileAdapter(docStrategies ...strategies.Strategy) *LocalGoFileAdapter {
	if len(docStrategies) == 0 {
		docStrategies = strategies.Default()
	}

	return &LocalGoFileAdapter{strategies: docStrategies}
}

// ScanFile implements GoFileAdapter.
func (a *LocalGoFileAdapter) ScanFile(fileSet *token.FileSet, filename m.FilePath, importPath string, src []byte) ([]m.UnitSpec, error) {
	file, err := parser.ParseFile(fileSet, string(filename), src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	scan := &fileScan{
		adapter:    a,
		importPath: importPath,
		path:       filename,
		imports:    fileImports(file),
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			scan.genDecl(d)
		case *ast.FuncDecl:
			scan.funcDecl(d)
		}
	}

	return scan.units, nil
}

type fileScan struct {
	adapter    *LocalGoFileAdapter
	importPath string
	path       m.FilePath
	imports    map[string]string
	units      []m.UnitSpec
}

func (s *fileScan) qualify(name string) string {
	return s.importPath + "." + name
}

func (s *fileScan) genDecl(d *ast.GenDecl) {
	for _, spec := range d.Specs {
		switch sp := spec.(type) {
		case *ast.TypeSpec:
			s.typeSpec(d, sp)
		case *ast.ValueSpec:
			s.valueSpec(d, sp)
		}
	}
}

func (s *fileScan) typeSpec(d *ast.GenDecl, sp *ast.TypeSpec) {
	kind := m.KindType

	var abstract *bool

	switch sp.Type.(type) {
	case *ast.InterfaceType:
		kind = m.KindInterface
		abstract = boolPtr(true)
	case *ast.StructType:
		kind = m.KindStruct
		abstract = boolPtr(false)
	}

	deps := newDependencySet(s)
	deps.fieldList(sp.TypeParams)
	deps.expr(sp.Type)
	deps.doc(docText(d.Doc, sp.Doc, sp.Comment))

	s.units = append(s.units, m.UnitSpec{
		Package:      s.importPath,
		Name:         s.qualify(sp.Name.Name),
		Short:        sp.Name.Name,
		Path:         s.path,
		Kind:         kind,
		Abstract:     abstract,
		Exported:     sp.Name.IsExported(),
		Dependencies: deps.names,
	})
}

func (s *fileScan) valueSpec(d *ast.GenDecl, sp *ast.ValueSpec) {
	kind := m.KindVar
	if d.Tok == token.CONST {
		kind = m.KindConst
	}

	deps := newDependencySet(s)
	deps.expr(sp.Type)

	for _, value := range sp.Values {
		deps.expr(value)
	}

	deps.doc(docText(d.Doc, sp.Doc, sp.Comment))

	for _, name := range sp.Names {
		if name.Name == "_" {
			continue
		}

		s.units = append(s.units, m.UnitSpec{
			Package:      s.importPath,
		Name:         s.qualify(name.Name),
			Short:        name.Name,
			Path:         s.path,
			Kind:         kind,
			Exported:     name.IsExported(),
			Dependencies: deps.names,
		})
	}
}

func (s *fileScan) funcDecl(d *ast.FuncDecl) {
	deps := newDependencySet(s)
	deps.fieldList(d.Recv)
	deps.funcType(d.Type)

	if d.Body != nil {
		deps.stmt(d.Body)
	}
	deps.doc(docText(d.Doc))

	if d.Recv == nil || len(d.Recv.List) == 0 {
		s.units = append(s.units, m.UnitSpec{
			Package:      s.importPath,
		Name:         s.qualify(d.Name.Name),
			Short:        d.Name.Name,
			Path:         s.path,
			Kind:         m.KindFunc,
			Exported:     d.Name.IsExported(),
			Dependencies: deps.names,
		})

		return
	}

	receiver := receiverName(d.Recv.List[0].Type)
	if receiver == "" {
		return
	}

	// The receiver type may be declared in another file: leave its path and
	// kind to that declaration.
	s.units = append(s.units, m.UnitSpec{
		Package:      s.importPath,
		Name:         s.qualify(receiver),
		Short:        receiver,
		Exported:     ast.IsExported(receiver),
		Dependencies: deps.names,
	})
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.ParenExpr:
		return receiverName(e.X)
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	default:
		return ""
	}
}

// dependencySet collects the names a declaration references, in first-seen
// order.
type dependencySet struct {
	scan  *fileScan
	seen  map[string]struct{}
	names []string
}

func newDependencySet(scan *fileScan) *dependencySet {
	return &dependencySet{scan: scan, seen: make(map[string]struct{})}
}

func (d *dependencySet) add(name string) {
	if name == "" {
		return
	}

	if _, ok := d.seen[name]; ok {
		return
	}

	d.seen[name] = struct{}{}
	d.names = append(d.names, name)
}

func (d *dependencySet) ident(name string) {
	switch {
	case name == "_":
	case m.IsPredeclaredType(name):
		d.add(name)
	case m.IsPredeclared(name):
	default:
		d.add(d.scan.qualify(name))
	}
}

func (d *dependencySet) fieldList(list *ast.FieldList) {
	if list == nil {
		return
	}

	for _, field := range list.List {
		d.expr(field.Type)
	}
}

func (d *dependencySet) funcType(ft *ast.FuncType) {
	if ft == nil {
		return
	}

	d.fieldList(ft.TypeParams)
	d.fieldList(ft.Params)
	d.fieldList(ft.Results)
}

func (d *dependencySet) expr(node ast.Expr) {
	if node != nil {
		d.walk(node)
	}
}

func (d *dependencySet) stmt(node ast.Stmt) {
	if node != nil {
		d.walk(node)
	}
}

// walk visits node, skipping identifiers that declare rather than reference
// something: field and parameter names, selector members, labels, composite
// literal keys and the left side of short variable declarations.
func (d *dependencySet) walk(node ast.Node) {
	ast.Inspect(node, func(n ast.Node) bool {
		switch e := n.(type) {
		case *ast.Ident:
			d.ident(e.Name)
		case *ast.SelectorExpr:
			d.selector(e)
			return false
		case *ast.Field:
			d.expr(e.Type)
			return false
		case *ast.KeyValueExpr:
			if _, ok := e.Key.(*ast.Ident); !ok {
				d.expr(e.Key)
			}

			d.expr(e.Value)

			return false
		case *ast.AssignStmt:
			if e.Tok != token.DEFINE {
				return true
			}

			for _, value := range e.Rhs {
				d.expr(value)
			}

			return false
		case *ast.RangeStmt:
			if e.Tok != token.DEFINE {
				return true
			}

			d.expr(e.X)
			d.stmt(e.Body)

			return false
		case *ast.ValueSpec:
			d.expr(e.Type)

			for _, value := range e.Values {
				d.expr(value)
			}

			return false
		case *ast.TypeSpec:
			d.fieldList(e.TypeParams)
			d.expr(e.Type)

			return false
		case *ast.LabeledStmt:
			d.stmt(e.Stmt)
			return false
		case *ast.BranchStmt:
			return false
		}

		return true
	})
}

func (d *dependencySet) selector(e *ast.SelectorExpr) {
	if pkg, ok := e.X.(*ast.Ident); ok {
		if importPath, imported := d.scan.imports[pkg.Name]; imported {
			d.add(importPath + "." + e.Sel.Name)
			return
		}
	}

	d.expr(e.X)
}

// doc feeds the annotation strategies and resolves the type names they find
// the way an identifier in code would be resolved.
func (d *dependencySet) doc(text string) {
	if text == "" {
		return
	}

	for _, name := range strategies.Union(text, d.scan.adapter.strategies...) {
		name = strings.TrimLeft(name, "*.")

		switch {
		case name == "":
		case strings.ContainsAny(name, `/\`):
			d.add(name)
		case strings.Contains(name, "."):
			pkg, symbol, _ := strings.Cut(name, ".")
			if importPath, ok := d.scan.imports[pkg]; ok {
				d.add(importPath + "." + symbol)
			} else {
				d.add(name)
			}
		default:
			d.ident(name)
		}
	}
}

func docText(groups ...*ast.CommentGroup) string {
	var parts []string

	for _, group := range groups {
		if text := group.Text(); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n")
}

var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

// fileImports maps the local name of every import to its path. Blank and dot
// imports are left out.
func fileImports(file *ast.File) map[string]string {
	imports := make(map[string]string, len(file.Imports))

	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := ""
		if spec.Name != nil {
			name = spec.Name.Name
		} else {
			name = defaultImportName(importPath)
		}

		if name == "_" || name == "." {
			continue
		}

		imports[name] = importPath
	}

	return imports
}

// defaultImportName guesses the package name of an import path without
// loading it: "gopkg.in/yaml.v3" -> "yaml", "github.com/x/y/v2" -> "y".
func defaultImportName(importPath string) string {
	base := path.Base(importPath)
	if majorVersion.MatchString(base) {
		base = path.Base(path.Dir(importPath))
	}

	if i := strings.Index(base, ".v"); i > 0 {
		base = base[:i]
	}

	base = strings.TrimPrefix(base, "go-")

	return strings.ReplaceAll(base, "-", "")
}

func boolPtr(v bool) *bool {
	return &v
}
