package gen

import (
	"context"
	"go/parser"
	"go/token"
	"go/types"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/dmitrymomot/validex/pkg/logger"
)

// loadMode is the least go/packages needs to expose a package scope.
const loadMode = packages.NeedName | packages.NeedTypes

// packageResolver answers Resolver lookups from the other files of the
// input's directory and, for imported names, from type-checked packages.
// It is used for one input file and is not safe for concurrent use.
type packageResolver struct {
	dir   string
	pkg   string
	input string
	opts  Options
	log   *slog.Logger

	local    map[string]RefKind
	imported map[string]*types.Package
}

func newPackageResolver(f *File, opts Options, log *slog.Logger) *packageResolver {
	return &packageResolver{
		dir:      filepath.Dir(f.Path),
		pkg:      f.Package,
		input:    filepath.Base(f.Path),
		opts:     opts,
		log:      log,
		imported: make(map[string]*types.Package),
	}
}

func (r *packageResolver) Lookup(ctx context.Context, path, name string) RefKind {
	if path == "" {
		if r.local == nil {
			r.local = r.siblingDecls(ctx)
		}
		return r.local[name]
	}

	pkg, ok := r.imported[path]
	if !ok {
		pkg = r.load(ctx, path)
		r.imported[path] = pkg
	}
	if pkg == nil {
		return RefUnknown
	}
	switch pkg.Scope().Lookup(name).(type) {
	case *types.Func:
		return RefFunc
	case *types.Var, *types.Const:
		return RefValue
	case *types.TypeName:
		return RefType
	default:
		return RefUnknown
	}
}

// siblingDecls collects package-level declarations from the other non-test,
// non-generated files of the input's package.
func (r *packageResolver) siblingDecls(ctx context.Context) map[string]RefKind {
	decls := make(map[string]RefKind)

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		r.log.DebugContext(ctx, "cannot list package directory", slog.String("dir", r.dir), logger.Error(err))
		return decls
	}

	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == r.input || !strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") || r.opts.IsGenerated(name) {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(r.dir, name), nil, parser.SkipObjectResolution)
		if err != nil || f.Name.Name != r.pkg {
			continue
		}
		for k, v := range collectDecls(f) {
			decls[k] = v
		}
	}
	return decls
}

func (r *packageResolver) load(ctx context.Context, path string) *types.Package {
	pkgs, err := packages.Load(&packages.Config{Context: ctx, Mode: loadMode, Dir: r.dir}, path)
	if err != nil || len(pkgs) == 0 || pkgs[0].Types == nil {
		r.log.DebugContext(ctx, "cannot load imported package",
			slog.String("import", path),
			logger.Error(err),
		)
		return nil
	}
	if len(pkgs[0].Errors) > 0 {
		r.log.DebugContext(ctx, "imported package has errors",
			slog.String("import", path),
			logger.Count("errors", len(pkgs[0].Errors)),
		)
	}
	return pkgs[0].Types
}
