package gen

import (
	"strings"

	"github.com/samber/lo"
)

const (
	DefaultTag    = "check"
	DefaultMethod = "Validate"
	DefaultSuffix = "_validex.go"
)

// Options configures a Generator. Zero fields take the defaults.
type Options struct {
	// Tag is the struct tag key holding the checks.
	Tag string
	// Method is the name of the generated method.
	Method string
	// Suffix replaces ".go" in the input name to form the output name.
	Suffix string
}

func (o Options) withDefaults() Options {
	return Options{
		Tag:    lo.CoalesceOrEmpty(strings.TrimSpace(o.Tag), DefaultTag),
		Method: lo.CoalesceOrEmpty(strings.TrimSpace(o.Method), DefaultMethod),
		Suffix: lo.CoalesceOrEmpty(strings.TrimSpace(o.Suffix), DefaultSuffix),
	}
}

// OutputPath returns the generated file path for src.
func (o Options) OutputPath(src string) string {
	return strings.TrimSuffix(src, ".go") + o.withDefaults().Suffix
}

// IsGenerated reports whether path looks like an output of these options.
func (o Options) IsGenerated(path string) bool {
	return strings.HasSuffix(path, o.withDefaults().Suffix)
}
