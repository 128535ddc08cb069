package main

import (
	"errors"
	"fmt"
	"os"

	"rmt/internal/cli"
	"rmt/internal/cli/commands"
	"rmt/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "rmt",
		Short:         "Test harness for the route_manager analytics program",
		Long:          `A test harness that drives the route_manager analytics program through its question/graph-type matrix, validates every produced CSV against golden reference data and reports pass/fail per case.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults and .env overrides
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command; exit codes distinguish test failures from
	// configuration and fixture problems.
	if err := rootCmd.Execute(); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
