package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validex/internal/gen"
	"github.com/dmitrymomot/validex/pkg/logger"
)

var errOutOfDate = errors.New("generated files are out of date")

type genFlags struct {
	check  bool
	tag    string
	method string
	suffix string
	color  bool
}

func newGenCmd(a *app) *cobra.Command {
	var f genFlags

	cmd := &cobra.Command{
		Use:   "gen [FILE|DIR]...",
		Short: "Generate Validate methods for tagged struct types",
		Long: `gen writes <name>_validex.go next to every input file that declares struct
types with check tags. Directories expand to their non-test .go files.
Without arguments the file named by $GOFILE is used, as set by go generate.

With --check nothing is written: each output is regenerated in memory,
compared with the file on disk, and any difference is printed as a diff.
The command exits non-zero when a file is out of date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.genOptions()
			if cmd.Flags().Changed("tag") {
				opts.Tag = f.tag
			}
			if cmd.Flags().Changed("method") {
				opts.Method = f.method
			}
			if cmd.Flags().Changed("suffix") {
				opts.Suffix = f.suffix
			}
			color := a.cfg.Color
			if cmd.Flags().Changed("color") {
				color = f.color
			}

			files, err := inputFiles(args, opts)
			if err != nil {
				return a.fail(err)
			}
			if err := a.runGen(cmd, gen.New(opts, a.log), files, f.check, color); err != nil {
				return a.fail(err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&f.check, "check", false, "report out-of-date files instead of writing them")
	flags.StringVar(&f.tag, "tag", gen.DefaultTag, "struct tag key holding the checks")
	flags.StringVar(&f.method, "method", gen.DefaultMethod, "name of the generated method")
	flags.StringVar(&f.suffix, "suffix", gen.DefaultSuffix, "output file suffix replacing .go")
	flags.BoolVar(&f.color, "color", false, "colour --check diffs")

	return cmd
}

func (a *app) runGen(cmd *cobra.Command, g *gen.Generator, files []string, check, color bool) error {
	ctx := cmd.Context()
	var stale []string

	for _, file := range files {
		fctx := logger.WithFileContext(ctx, file)

		if check {
			res, err := g.Check(ctx, file)
			switch {
			case errors.Is(err, gen.ErrDrift):
				stale = append(stale, file)
				fmt.Fprint(a.stdout, res.Format(color))
				continue
			case errors.Is(err, gen.ErrNoTaggedTypes):
				a.log.DebugContext(fctx, "skipped file without tagged types")
				continue
			case err != nil:
				return err
			}
			a.log.DebugContext(fctx, "generated file is up to date")
			continue
		}

		out, err := g.Write(ctx, file)
		switch {
		case errors.Is(err, gen.ErrNoTaggedTypes):
			a.log.DebugContext(fctx, "skipped file without tagged types")
			continue
		case err != nil:
			return err
		}
		fmt.Fprintln(a.stdout, out.Path)
	}

	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", errOutOfDate, strings.Join(stale, ", "))
	}
	return nil
}

// inputFiles expands arguments into the Go files to process.
func inputFiles(args []string, opts gen.Options) ([]string, error) {
	if len(args) == 0 {
		gofile := os.Getenv("GOFILE")
		if gofile == "" {
			return nil, errors.New("no input files: pass FILE or DIR arguments, or run under go generate")
		}
		args = []string{gofile}
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.go"))
		if err != nil {
			return nil, err
		}
		files = append(files, lo.Filter(matches, func(m string, _ int) bool {
			return !strings.HasSuffix(m, "_test.go") && !opts.IsGenerated(m)
		})...)
	}
	return lo.Uniq(files), nil
}
