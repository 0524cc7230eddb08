package gen

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// File is a parsed input file reduced to what the generator needs.
type File struct {
	Path    string
	Package string
	Imports []Import
	Types   []Type

	decls map[string]RefKind
}

// RefKind is what a name used in a tag declares.
type RefKind uint8

const (
	RefUnknown RefKind = iota
	RefFunc
	RefValue
	RefType
)

// Import is one import of the input file.
type Import struct {
	Name string // explicit name, empty when the default is used
	Path string
}

var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

// LocalName is the identifier the import is referred to by.
func (i Import) LocalName() string {
	if i.Name != "" {
		return i.Name
	}
	base := path.Base(i.Path)
	if majorVersion.MatchString(base) {
		base = path.Base(path.Dir(i.Path))
	}
	if idx := strings.Index(base, ".v"); idx > 0 {
		base = base[:idx] // gopkg.in/yaml.v3
	}
	base = strings.TrimPrefix(base, "go-")
	return strings.ReplaceAll(base, "-", "_")
}

func (i Import) String() string {
	if i.Name != "" {
		return i.Name + " " + strconv.Quote(i.Path)
	}
	return strconv.Quote(i.Path)
}

// Type is a struct type with at least one tagged field.
type Type struct {
	Name       string
	TypeParams []string
	Fields     []Field
}

// Receiver renders the method receiver type, including type parameters.
func (t Type) Receiver() string {
	if len(t.TypeParams) == 0 {
		return t.Name
	}
	return t.Name + "[" + strings.Join(t.TypeParams, ", ") + "]"
}

// Field is one tagged struct field.
type Field struct {
	Name   string
	Key    string
	Checks []Check
	Pos    token.Position
}

// Check is one comma-separated piece of a tag.
type Check struct {
	Expr string
	// Func is set when Expr refers to a function or method expression.
	Func bool
	// Literal is set when Expr was a constant compared with validex.Eq.
	Literal bool
	// qualifiers are the package-like identifiers Expr selects from.
	qualifiers []string
	// ref is set when Expr names a declaration instead of building a rule.
	ref      *ref
	resolved bool
}

// ref is a tag piece of the form name, qual.name or qual.name.method,
// optionally instantiated with type arguments.
type ref struct {
	qual   string
	name   string
	method string
}

// Binder is the validex function the check is bound with.
func (c Check) Binder() string {
	if c.Func {
		return "BindFunc"
	}
	return "Bind"
}

// ParseFile parses src and collects every struct type carrying tag.
func ParseFile(fset *token.FileSet, filename string, src []byte, tag string) (*File, error) {
	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	out := &File{
		Path:    filename,
		Package: f.Name.Name,
		decls:   collectDecls(f),
		Imports: lo.Map(f.Imports, func(spec *ast.ImportSpec, _ int) Import {
			imp := Import{Path: lo.Must(strconv.Unquote(spec.Path.Value))}
			if spec.Name != nil {
				imp.Name = spec.Name.Name
			}
			return imp
		}),
	}

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Assign.IsValid() {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			fields, err := parseFields(fset, st, tag)
			if err != nil {
				return nil, fmt.Errorf("type %s: %w", ts.Name.Name, err)
			}
			if len(fields) == 0 {
				continue
			}
			for i := range fields {
				out.classify(fields[i].Checks)
			}
			out.Types = append(out.Types, Type{
				Name:       ts.Name.Name,
				TypeParams: typeParams(ts),
				Fields:     fields,
			})
		}
	}
	return out, nil
}

func typeParams(ts *ast.TypeSpec) []string {
	if ts.TypeParams == nil {
		return nil
	}
	return lo.FlatMap(ts.TypeParams.List, func(f *ast.Field, _ int) []string {
		return lo.Map(f.Names, func(n *ast.Ident, _ int) string { return n.Name })
	})
}

func parseFields(fset *token.FileSet, st *ast.StructType, tag string) ([]Field, error) {
	var fields []Field
	for _, f := range st.Fields.List {
		if f.Tag == nil {
			continue
		}
		raw, err := strconv.Unquote(f.Tag.Value)
		if err != nil {
			continue
		}
		value, ok := reflect.StructTag(raw).Lookup(tag)
		if !ok {
			continue
		}

		pos := fset.Position(f.Tag.Pos())
		if len(f.Names) == 0 {
			return nil, fmt.Errorf("%s: %w: embedded fields cannot carry %q tags", pos, ErrMalformedTag, tag)
		}

		checks, err := parseChecks(value, f.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", pos, ErrMalformedTag, err)
		}

		var jsonName string
		if len(f.Names) == 1 {
			jsonName = jsonKey(raw)
		}
		for _, name := range f.Names {
			if name.Name == "_" {
				continue
			}
			fields = append(fields, Field{
				Name:   name.Name,
				Key:    lo.CoalesceOrEmpty(jsonName, lo.SnakeCase(name.Name)),
				Checks: checks,
				Pos:    pos,
			})
		}
	}
	return fields, nil
}

// jsonKey returns the field name from a json tag, if any.
func jsonKey(raw string) string {
	v, ok := reflect.StructTag(raw).Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(v, ",")
	if name == "-" {
		return ""
	}
	return name
}

func parseChecks(value string, typ ast.Expr) ([]Check, error) {
	parts, err := splitChecks(value)
	if err != nil {
		return nil, err
	}

	checks := make([]Check, 0, len(parts))
	for _, p := range parts {
		expr, err := parser.ParseExpr(p)
		if err != nil {
			return nil, fmt.Errorf("check %q: %w", p, err)
		}

		if isLiteral(expr) {
			if _, ok := typ.(*ast.StarExpr); ok {
				return nil, fmt.Errorf("check %q: literal cannot be compared with a pointer field", p)
			}
			checks = append(checks, Check{
				Expr:       fmt.Sprintf("validex.Eq[%s](%s)", types.ExprString(typ), p),
				Literal:    true,
				qualifiers: qualifiers(typ),
			})
			continue
		}

		checks = append(checks, Check{
			Expr:       p,
			qualifiers: qualifiers(expr),
			ref:        refOf(expr),
		})
	}
	return checks, nil
}

// isLiteral reports whether expr is a constant literal such as 100, -1.5,
// "admin", 'x' or true.
func isLiteral(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return true
	case *ast.UnaryExpr:
		return (e.Op == token.SUB || e.Op == token.ADD) && isLiteral(e.X)
	case *ast.ParenExpr:
		return isLiteral(e.X)
	case *ast.Ident:
		return e.Name == "true" || e.Name == "false"
	default:
		return false
	}
}

// refOf returns the declaration expr names, or nil when expr builds a value
// (a call, a composite literal, an operator).
func refOf(expr ast.Expr) *ref {
	switch e := expr.(type) {
	case *ast.Ident:
		return &ref{name: e.Name}
	case *ast.SelectorExpr:
		switch x := e.X.(type) {
		case *ast.Ident:
			return &ref{qual: x.Name, name: e.Sel.Name}
		case *ast.SelectorExpr:
			if r := refOf(x); r != nil && r.method == "" && r.qual != "" {
				return &ref{qual: r.qual, name: r.name, method: e.Sel.Name}
			}
		}
		return nil
	case *ast.IndexExpr:
		return refOf(e.X)
	case *ast.IndexListExpr:
		return refOf(e.X)
	case *ast.ParenExpr:
		return refOf(e.X)
	default:
		return nil
	}
}

// collectDecls maps the package-level names f declares to their kind.
func collectDecls(f *ast.File) map[string]RefKind {
	decls := make(map[string]RefKind)
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				decls[d.Name.Name] = RefFunc
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch sp := spec.(type) {
				case *ast.TypeSpec:
					decls[sp.Name.Name] = RefType
				case *ast.ValueSpec:
					for _, n := range sp.Names {
						decls[n.Name] = RefValue
					}
				}
			}
		}
	}
	return decls
}

// classify sets Func on checks whose reference the file itself declares.
// Unresolved references default to functions until Resolve learns more.
func (f *File) classify(checks []Check) {
	for i := range checks {
		c := &checks[i]
		if c.ref == nil {
			continue
		}
		k := f.localKind(c.ref)
		c.resolved = k != RefUnknown
		c.Func = k == RefFunc || k == RefUnknown
	}
}

// localKind classifies r using only the input file's declarations.
func (f *File) localKind(r *ref) RefKind {
	if r.qual == "" {
		return callable(f.decls[r.name])
	}
	if r.method == "" && f.decls[r.qual] == RefType {
		return RefFunc // T.Method
	}
	return RefUnknown
}

// Resolver classifies names the input file does not declare itself.
type Resolver interface {
	// Lookup returns what name declares in the package imported as path,
	// or in the input's own package when path is empty.
	Lookup(ctx context.Context, path, name string) RefKind
}

// Resolve classifies the references ParseFile could not, asking r about
// sibling files and imported packages. References r cannot place stay bound
// as functions.
func (f *File) Resolve(ctx context.Context, r Resolver) {
	for ti := range f.Types {
		for fi := range f.Types[ti].Fields {
			checks := f.Types[ti].Fields[fi].Checks
			for ci := range checks {
				c := &checks[ci]
				if c.ref == nil || c.resolved {
					continue
				}
				if k := f.lookup(ctx, r, c.ref); k != RefUnknown {
					c.Func = k == RefFunc
					c.resolved = true
				}
			}
		}
	}
}

func (f *File) lookup(ctx context.Context, r Resolver, rf *ref) RefKind {
	if rf.qual == "" {
		return callable(r.Lookup(ctx, "", rf.name))
	}
	if _, local := f.decls[rf.qual]; local {
		return RefUnknown // field or method value of a package-level var
	}

	imp, ok := lo.Find(f.Imports, func(imp Import) bool {
		return imp.Name != "_" && imp.Name != "." && imp.LocalName() == rf.qual
	})
	if !ok {
		if rf.method == "" && r.Lookup(ctx, "", rf.qual) == RefType {
			return RefFunc // T.Method with T in a sibling file
		}
		return RefUnknown
	}

	k := r.Lookup(ctx, imp.Path, rf.name)
	if rf.method != "" {
		if k == RefType {
			return RefFunc // pkg.T.Method
		}
		return RefUnknown
	}
	return callable(k)
}

// callable narrows k to what a bare name can be bound as.
func callable(k RefKind) RefKind {
	if k == RefType {
		return RefUnknown
	}
	return k
}

// qualifiers collects the X of every X.Sel selector where X is an identifier.
func qualifiers(expr ast.Expr) []string {
	var names []string
	ast.Inspect(expr, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok {
				names = append(names, id.Name)
			}
		}
		return true
	})
	return lo.Uniq(names)
}
