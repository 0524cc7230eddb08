// Package config loads a configuration struct from a YAML file, .env files
// and environment variables.
//
// It wraps `gopkg.in/yaml.v3`, `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11`. Sources are applied in order, each one
// overriding the previous:
//
//  1. Whatever the caller already put in the struct (defaults).
//  2. The YAML file given with WithFile.
//  3. Environment variables, after .env files from WithEnvFiles are loaded.
//
// Example:
//
//	type Config struct {
//		LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
//	}
//
//	cfg := Config{LogLevel: "info"}
//	if err := config.Load(&cfg, config.WithPrefix("VALIDEX_")); err != nil {
//		return err
//	}
//
// Failures wrap ErrReadingFile or ErrParsingConfig and can be matched with
// errors.Is.
package config
