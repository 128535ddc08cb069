package commands

import (
	"github.com/spf13/cobra"

	"rmt/internal/config"
	"rmt/internal/execution"
	"rmt/internal/matrix"
	"rmt/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	selector, err := matrix.ParseSelector(args)
	if err != nil {
		lc.formatter.Usage(err)
		return &ExitError{Code: ExitConfigError, Err: err}
	}

	cases := matrix.Expand(selector)
	commands := make([]string, len(cases))
	for i, tc := range cases {
		commands[i] = execution.NewCommand(lc.config, tc).String()
	}

	lc.formatter.PrintMatrix(cases, commands)
	return nil
}
