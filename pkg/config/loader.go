package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type options struct {
	file     string
	envFiles []string
	prefix   string
}

// Option configures Load.
type Option func(*options)

// WithFile decodes the YAML file at path before the environment is applied.
// An empty path is ignored.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithEnvFiles loads the given .env files into the process environment.
// Variables that are already set are not overridden.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithPrefix restricts environment lookup to variables starting with prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load fills v from, in increasing precedence: the values already in v, the
// YAML file, and the environment (after any .env files are loaded).
//
// Example:
//
//	type Config struct {
//		LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
//		Tag      string `yaml:"tag" env:"TAG"`
//	}
//
//	cfg := Config{LogLevel: "info", Tag: "check"}
//	err := config.Load(&cfg, config.WithFile(".validex.yaml"), config.WithPrefix("VALIDEX_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.file != "" {
		data, err := os.ReadFile(o.file)
		if err != nil {
			return errors.Join(ErrReadingFile, err)
		}
		if err := yaml.Unmarshal(data, v); err != nil {
			return errors.Join(ErrParsingConfig, err)
		}
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrReadingFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
