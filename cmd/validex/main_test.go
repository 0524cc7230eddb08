package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "package sample\n\ntype T struct {\n\tN int `check:\"isPositive\"`\n}\n"

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	r := run(t, "version")
	require.NoError(t, r.err)
	assert.Regexp(t, `^validex \S+\n$`, r.stdout)
}

func TestGen_WritesFile(t *testing.T) {
	dir := t.TempDir()
	src := writeSample(t, dir, "sample.go")

	r := run(t, "gen", src)
	require.NoError(t, r.err, r.stderr)

	out := filepath.Join(dir, "sample_validex.go")
	assert.Equal(t, out+"\n", r.stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "// Code generated by validex gen; DO NOT EDIT.")
	assert.Contains(t, string(data), "func (r T) Validate() error {")
	assert.Contains(t, string(data), `validex.BindFunc("n", isPositive, r.N)`)
}

func TestGen_Check(t *testing.T) {
	dir := t.TempDir()
	src := writeSample(t, dir, "sample.go")

	t.Run("missing output", func(t *testing.T) {
		r := run(t, "gen", "--check", src)
		require.ErrorIs(t, r.err, errOutOfDate)
		assert.Contains(t, r.stdout, "--- "+filepath.Join(dir, "sample_validex.go"))
		assert.Contains(t, r.stdout, "+ func (r T) Validate() error {")
		assert.Contains(t, r.stderr, "out of date")
		assert.NoFileExists(t, filepath.Join(dir, "sample_validex.go"))
	})

	t.Run("up to date", func(t *testing.T) {
		require.NoError(t, run(t, "gen", src).err)
		r := run(t, "gen", "--check", src)
		require.NoError(t, r.err, r.stderr)
		assert.Empty(t, r.stdout)
	})

	t.Run("source changed", func(t *testing.T) {
		changed := "package sample\n\ntype T struct {\n\tN int `check:\"isPositive, isEven\"`\n}\n"
		require.NoError(t, os.WriteFile(src, []byte(changed), 0o644))

		r := run(t, "gen", "--check", src)
		require.ErrorIs(t, r.err, errOutOfDate)
		assert.Contains(t, r.stdout, "+ \t\tvalidex.BindFunc(\"n\", isEven, r.N),")
	})
}

func TestGen_Directory(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "a.go")
	writeSample(t, dir, "a_test.go")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.go"), []byte("package sample\n\ntype P struct{}\n"), 0o644))

	r := run(t, "gen", dir)
	require.NoError(t, r.err, r.stderr)
	assert.Equal(t, filepath.Join(dir, "a_validex.go")+"\n", r.stdout)
	assert.NoFileExists(t, filepath.Join(dir, "a_test_validex.go"))
	assert.NoFileExists(t, filepath.Join(dir, "plain_validex.go"))

	// the generated file itself is not picked up on the next run
	r = run(t, "gen", dir)
	require.NoError(t, r.err, r.stderr)
	assert.NoFileExists(t, filepath.Join(dir, "a_validex_validex.go"))
}

func TestGen_GOFILE(t *testing.T) {
	dir := t.TempDir()
	src := writeSample(t, dir, "sample.go")

	t.Setenv("GOFILE", src)
	r := run(t, "gen")
	require.NoError(t, r.err, r.stderr)
	assert.FileExists(t, filepath.Join(dir, "sample_validex.go"))

	t.Setenv("GOFILE", "")
	r = run(t, "gen")
	assert.Error(t, r.err)
	assert.Contains(t, r.stderr, "no input files")
}

func TestGen_Configuration(t *testing.T) {
	t.Run("config file", func(t *testing.T) {
		dir := t.TempDir()
		src := writeSample(t, dir, "sample.go")
		cfg := filepath.Join(dir, "validex.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("method: Check\nsuffix: _check.go\n"), 0o644))

		r := run(t, "--config", cfg, "gen", src)
		require.NoError(t, r.err, r.stderr)

		data, err := os.ReadFile(filepath.Join(dir, "sample_check.go"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "func (r T) Check() error {")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		src := writeSample(t, dir, "sample.go")
		cfg := filepath.Join(dir, "validex.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("suffix: _check.go\n"), 0o644))
		t.Setenv("VALIDEX_SUFFIX", "_env.go")

		r := run(t, "--config", cfg, "gen", src)
		require.NoError(t, r.err, r.stderr)
		assert.FileExists(t, filepath.Join(dir, "sample_env.go"))
	})

	t.Run("flags override environment", func(t *testing.T) {
		dir := t.TempDir()
		src := writeSample(t, dir, "sample.go")
		t.Setenv("VALIDEX_SUFFIX", "_env.go")

		r := run(t, "gen", "--suffix", "_flag.go", src)
		require.NoError(t, r.err, r.stderr)
		assert.FileExists(t, filepath.Join(dir, "sample_flag.go"))
		assert.NoFileExists(t, filepath.Join(dir, "sample_env.go"))
	})

	t.Run("custom tag", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "rules.go")
		require.NoError(t, os.WriteFile(path, []byte("package sample\n\ntype R struct {\n\tN int `rules:\"isPositive\"`\n}\n"), 0o644))

		r := run(t, "gen", "--tag", "rules", path)
		require.NoError(t, r.err, r.stderr)
		assert.FileExists(t, filepath.Join(dir, "rules_validex.go"))
	})

	t.Run("json logs at debug level", func(t *testing.T) {
		dir := t.TempDir()
		src := writeSample(t, dir, "sample.go")

		r := run(t, "--log-level", "debug", "--log-format", "json", "gen", src)
		require.NoError(t, r.err, r.stderr)
		assert.Contains(t, r.stderr, `"msg":"wrote validation methods"`)
		assert.Contains(t, r.stderr, `"app":"validex"`)
	})

	t.Run("invalid log level", func(t *testing.T) {
		r := run(t, "--log-level", "loud", "version")
		require.Error(t, r.err)
		assert.Contains(t, r.stderr, "invalid log level")
	})

	t.Run("missing config file", func(t *testing.T) {
		r := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
		require.Error(t, r.err)
		assert.Contains(t, r.stderr, "load config")
	})
}

func TestGen_MalformedTag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.go")
	require.NoError(t, os.WriteFile(path, []byte("package sample\n\ntype T struct {\n\tN int `check:\"validex.Eq(1\"`\n}\n"), 0o644))

	r := run(t, "gen", path)
	require.Error(t, r.err)
	assert.Contains(t, r.stderr, path+":4:")
	assert.NoFileExists(t, filepath.Join(dir, "bad_validex.go"))
}
