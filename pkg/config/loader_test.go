package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validex/pkg/config"
)

type genConfig struct {
	LogLevel string   `yaml:"log_level" env:"LOG_LEVEL"`
	Tag      string   `yaml:"tag" env:"TAG"`
	Method   string   `yaml:"method" env:"METHOD"`
	Suffix   string   `yaml:"suffix" env:"SUFFIX"`
	Dirs     []string `yaml:"dirs" env:"DIRS" envSeparator:","`
}

type requiredConfig struct {
	Token string `env:"TOKEN,required"`
}

func TestLoad_Defaults(t *testing.T) {
	cfg := genConfig{LogLevel: "info", Tag: "check"}
	require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_NONE_")))

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "check", cfg.Tag)
}

func TestLoad_File(t *testing.T) {
	cfg := genConfig{LogLevel: "info", Tag: "check", Method: "Validate"}
	require.NoError(t, config.Load(&cfg, config.WithFile("testdata/config.yaml"), config.WithPrefix("CFGTEST_NONE_")))

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "rules", cfg.Tag)
	assert.Equal(t, "Validate", cfg.Method, "fields missing from the file keep their defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("CFGTEST_TAG", "env_tag")
	t.Setenv("CFGTEST_DIRS", "a,b,c")

	cfg := genConfig{Tag: "check"}
	require.NoError(t, config.Load(&cfg, config.WithFile("testdata/config.yaml"), config.WithPrefix("CFGTEST_")))

	assert.Equal(t, "env_tag", cfg.Tag)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Dirs)
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("CFGTEST_SUFFIX")
		os.Unsetenv("CFGTEST_METHOD")
	})
	t.Setenv("CFGTEST_METHOD", "Validate")

	var cfg genConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles("testdata/test.env"), config.WithPrefix("CFGTEST_")))

	assert.Equal(t, "_from_dotenv", cfg.Suffix)
	assert.Equal(t, "Validate", cfg.Method, "existing variables are not overridden by .env files")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *genConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg genConfig
		assert.ErrorIs(t, config.Load(&cfg, config.WithFile("testdata/missing.yaml")), config.ErrReadingFile)
	})

	t.Run("missing env file", func(t *testing.T) {
		var cfg genConfig
		assert.ErrorIs(t, config.Load(&cfg, config.WithEnvFiles("testdata/missing.env")), config.ErrReadingFile)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		var cfg genConfig
		assert.ErrorIs(t, config.Load(&cfg, config.WithFile("testdata/broken.yaml")), config.ErrParsingConfig)
	})

	t.Run("required variable", func(t *testing.T) {
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg, config.WithPrefix("CFGTEST_REQ_")), config.ErrParsingConfig)

		t.Setenv("CFGTEST_REQ_TOKEN", "secret")
		require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_REQ_")))
		assert.Equal(t, "secret", cfg.Token)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg genConfig
		config.MustLoad(&cfg, config.WithFile("testdata/missing.yaml"))
	})
	assert.NotPanics(t, func() {
		var cfg genConfig
		config.MustLoad(&cfg, config.WithPrefix("CFGTEST_NONE_"))
	})
}
