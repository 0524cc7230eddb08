package gen

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

// Header is the first line of every generated file.
const Header = "// Code generated by validex gen; DO NOT EDIT."

const validexPath = "github.com/dmitrymomot/validex"

var fileTemplate = template.Must(template.New("file").Parse(`{{.Header}}

package {{.Package}}

import (
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{range .Types}}
func (r {{.Receiver}}) {{$.Method}}() error {
	return validex.Validate(
{{- range .Fields}}{{$f := .}}{{range .Checks}}
		validex.{{.Binder}}({{printf "%q" $f.Key}}, {{.Expr}}, r.{{$f.Name}}),
{{- end}}{{end}}
	)
}
{{end}}`))

type templateData struct {
	Header  string
	Package string
	Method  string
	Imports []Import
	Types   []Type
}

// Render produces the formatted source of the generated file for f.
func Render(f *File, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	data := templateData{
		Header:  Header,
		Package: f.Package,
		Method:  opts.Method,
		Imports: usedImports(f),
		Types:   f.Types,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	out, err := imports.Process(opts.OutputPath(f.Path), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

// usedImports keeps the input imports referenced by some check, plus validex.
func usedImports(f *File) []Import {
	needed := lo.Uniq(lo.FlatMap(f.Types, func(t Type, _ int) []string {
		return lo.FlatMap(t.Fields, func(fd Field, _ int) []string {
			return lo.FlatMap(fd.Checks, func(c Check, _ int) []string { return c.qualifiers })
		})
	}))

	used := lo.Filter(f.Imports, func(imp Import, _ int) bool {
		if imp.Name == "_" || imp.Name == "." {
			return false
		}
		if imp.Path == validexPath && imp.Name == "" {
			return false
		}
		return slices.Contains(needed, imp.LocalName())
	})
	used = append(used, Import{Path: validexPath})

	slices.SortFunc(used, func(a, b Import) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Name, b.Name))
	})
	return lo.UniqBy(used, func(imp Import) string { return imp.String() })
}
