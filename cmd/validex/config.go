package main

import (
	"github.com/dmitrymomot/validex/internal/gen"
	"github.com/dmitrymomot/validex/pkg/config"
)

// envPrefix scopes every environment variable the CLI reads.
const envPrefix = "VALIDEX_"

// cliConfig is loaded from defaults, the --config file, .env files and
// VALIDEX_* variables, in that order. Explicit flags win over all of them.
type cliConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`
	Tag       string `yaml:"tag" env:"TAG"`
	Method    string `yaml:"method" env:"METHOD"`
	Suffix    string `yaml:"suffix" env:"SUFFIX"`
	Color     bool   `yaml:"color" env:"COLOR"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		LogLevel:  "info",
		LogFormat: "text",
		Tag:       gen.DefaultTag,
		Method:    gen.DefaultMethod,
		Suffix:    gen.DefaultSuffix,
	}
}

func loadConfig(path string, envFiles []string) (cliConfig, error) {
	cfg := defaultConfig()
	opts := []config.Option{config.WithPrefix(envPrefix)}
	if path != "" {
		opts = append(opts, config.WithFile(path))
	}
	if len(envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(envFiles...))
	}
	if err := config.Load(&cfg, opts...); err != nil {
		return cliConfig{}, err
	}
	return cfg, nil
}

func (c cliConfig) genOptions() gen.Options {
	return gen.Options{Tag: c.Tag, Method: c.Method, Suffix: c.Suffix}
}
