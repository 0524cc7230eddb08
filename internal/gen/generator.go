package gen

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"log/slog"
	"os"

	"github.com/samber/lo"

	"github.com/dmitrymomot/validex/internal/diff"
	"github.com/dmitrymomot/validex/pkg/logger"
)

// GeneratedFile is the output for one input file.
type GeneratedFile struct {
	// Source is the input file path.
	Source string
	// Path is the output file path.
	Path string
	// Content is the formatted Go source.
	Content []byte
	// Types lists the struct types that received a method.
	Types []string
}

// Generator turns tagged struct types into validation methods.
type Generator struct {
	opts Options
	log  *slog.Logger
}

// New creates a Generator. A nil logger discards output.
func New(opts Options, log *slog.Logger) *Generator {
	if log == nil {
		log = logger.Discard()
	}
	return &Generator{
		opts: opts.withDefaults(),
		log:  log.With(logger.Component("gen")),
	}
}

// Options returns the effective options.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate reads src and renders its generated file without writing it.
func (g *Generator) Generate(ctx context.Context, src string) (*GeneratedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}
	return g.GenerateSource(ctx, src, data)
}

// GenerateSource renders the generated file for source code held in memory.
func (g *Generator) GenerateSource(ctx context.Context, filename string, src []byte) (*GeneratedFile, error) {
	ctx = logger.WithFileContext(ctx, filename)

	f, err := ParseFile(token.NewFileSet(), filename, src, g.opts.Tag)
	if err != nil {
		return nil, err
	}
	if len(f.Types) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoTaggedTypes)
	}
	f.Resolve(ctx, newPackageResolver(f, g.opts, g.log))

	content, err := Render(f, g.opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	names := lo.Map(f.Types, func(t Type, _ int) string { return t.Name })
	g.log.DebugContext(ctx, "rendered validation methods",
		logger.Count("types", len(names)),
		slog.Any("structs", names),
	)

	return &GeneratedFile{
		Source:  filename,
		Path:    g.opts.OutputPath(filename),
		Content: content,
		Types:   names,
	}, nil
}

// Write generates the file for src and writes it next to src.
func (g *Generator) Write(ctx context.Context, src string) (*GeneratedFile, error) {
	out, err := g.Generate(ctx, src)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(out.Path, out.Content, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", out.Path, err)
	}

	g.log.InfoContext(logger.WithFileContext(ctx, src), "wrote validation methods",
		slog.String("output", out.Path),
		logger.Count("types", len(out.Types)),
	)
	return out, nil
}

// Check regenerates src in memory and compares it with the file on disk.
// A missing or different file yields ErrDrift along with the diff.
func (g *Generator) Check(ctx context.Context, src string) (diff.Result, error) {
	out, err := g.Generate(ctx, src)
	if err != nil {
		return diff.Result{}, err
	}

	existing, err := os.ReadFile(out.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return diff.Result{}, fmt.Errorf("reading %s: %w", out.Path, err)
	}

	res := diff.Compute(string(existing), string(out.Content), out.Path, out.Path+" (generated)")
	if !res.Equal() {
		g.log.WarnContext(logger.WithFileContext(ctx, src), "generated file is out of date",
			slog.String("output", out.Path),
		)
		return res, fmt.Errorf("%w: %s", ErrDrift, out.Path)
	}
	return res, nil
}
