package commands

import (
	"rmt/internal/cli"
	"rmt/internal/config"
	"rmt/internal/execution"
	"rmt/internal/storage"
	"rmt/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run   *RunCommand
	List  *ListCommand
	Diffs *DiffsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	runner := execution.NewRunner(cfg)
	formatter := ui.NewFormatter(cfg)
	validator := execution.NewValidator(cfg, runner, formatter)
	jsonStorage := storage.NewJSONStorage(cfg)
	diffViewer := ui.NewDiffViewer(cfg, jsonStorage)

	return &Commands{
		Run:   NewRunCommand(cfg, validator, jsonStorage, formatter, diffViewer),
		List:  NewListCommand(cfg, formatter),
		Diffs: NewDiffsCommand(cfg, jsonStorage, diffViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// A bare invocation (or a bare question number) runs the matrix, matching
	// the original driver's CLI.
	rootCmd.RunE = c.Run.Execute
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [question number]",
		Short: "Run the test matrix against route_manager",
		Long:  "Execute route_manager for every (question, graph type) combination and validate each produced CSV against its golden file. An optional question number 1-5 restricts the matrix to that question's two cases.",
		RunE:  c.Run.Execute,
		Args:  cobra.ArbitraryArgs, // validated inside so bad selectors map to the config-error exit code
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Apply(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Per-case subprocess timeout (default 2m)")
	runCmd.Flags().StringVar(&flags.DataDir, "data-dir", "", "Directory holding the reference datasets")
	runCmd.Flags().StringVar(&flags.TestsDir, "tests-dir", "", "Directory holding the golden CSV files")
	runCmd.Flags().StringVar(&flags.Program, "program", "", "Path to the analytics program")
	runCmd.Flags().StringVar(&flags.Python, "python", "", "Interpreter used to run the program")
	runCmd.Flags().BoolVar(&flags.OpenDiffs, "open-diffs", false, "Open the interactive diff viewer when the run ends with failures")
	runCmd.Flags().BoolVar(&flags.ValidateCharts, "validate-charts", false, "Structurally validate produced chart PDFs (still non-gating)")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [question number]",
		Short: "List the matrix cases without executing them",
		Long:  "Print every command line the run command would execute for the given selector.",
		RunE:  c.List.Execute,
		Args:  cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Apply(flags.ToConfigFlags())
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	// Diffs command
	diffsCmd := &cobra.Command{
		Use:   "diffs",
		Short: "View structural diffs of the last run interactively",
		Long:  "Display the failed cases of the last persisted run in an interactive viewer, one structural diff per case.",
		RunE:  c.Diffs.Execute,
	}
	rootCmd.AddCommand(diffsCmd)
}
