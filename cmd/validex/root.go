package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validex/pkg/logger"
)

// app holds state shared by the subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	envFiles   []string
	logLevel   string
	logFormat  string

	cfg cliConfig
	log *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "validex",
		Short:         "Generate Validate methods from struct tags",
		Long:          `validex reads Go struct types whose fields carry check tags and writes value-receiver Validate methods built on the validex combinators.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, ".env files to load before reading VALIDEX_* variables")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newGenCmd(a), newVersionCmd(a))
	return root
}

// setup loads configuration and builds the logger. Flags set on the command
// line override configured values.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath, a.envFiles)
	if err != nil {
		return a.fail(fmt.Errorf("load config: %w", err))
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return a.fail(err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return a.fail(err)
	}

	a.cfg = cfg
	a.log = logger.New(
		logger.WithCLI("validex"),
		logger.WithOutput(a.stderr),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithFileFromContext(),
	)
	return nil
}

// fail prints err to stderr, since the root command silences cobra's own
// error output.
func (a *app) fail(err error) error {
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return err
}
