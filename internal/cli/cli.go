// Package cli wires the cobra command tree for the aoc binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aakee/aoc2023/internal/config"
	"github.com/aakee/aoc2023/internal/errors"
	"github.com/aakee/aoc2023/internal/puzzle"
	"github.com/aakee/aoc2023/internal/runner"
)

// Version is set at build time.
var Version = "dev"

type app struct {
	debug      bool
	configPath string

	cfg *config.Config
	log *zap.Logger
}

// New builds the root command with one subcommand per registered day.
func New() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 solutions",
		Long: `Solutions for the Advent of Code 2023 puzzles.

Each solved day is a subcommand taking an optional path to the puzzle
input file. Without the argument the day's built-in default path is
used, subject to the optional aoc.yaml configuration file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (default "+config.DefaultPath+" if present)")

	for _, d := range puzzle.Days() {
		root.AddCommand(a.dayCommand(d))
	}
	root.AddCommand(a.allCommand(), daysCommand(), versionCommand())
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.log = log

	path, explicit := config.DefaultPath, false
	if a.configPath != "" {
		path, explicit = a.configPath, true
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) dayCommand(d puzzle.Day) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("day%02d [input-file]", d.N),
		Short: d.Title,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			path := a.cfg.ResolveInput(d.N, d.DefaultInput, arg)
			return runner.New(d, path, cmd.OutOrStdout(), a.log).Run()
		},
	}
}

func (a *app) allCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every solved day against its default input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, d := range puzzle.Days() {
				fmt.Fprintf(out, "day %02d: %s\n", d.N, d.Title)
				path := a.cfg.ResolveInput(d.N, d.DefaultInput, "")
				if err := runner.New(d, path, out, a.log).Run(); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func daysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, d := range puzzle.Days() {
				fmt.Fprintf(out, "day%02d  %s  (%d parts)\n", d.N, d.Title, len(d.Parts))
			}
		},
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aoc %s\n", Version)
		},
	}
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	root := New()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "aoc: %v\n", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}
