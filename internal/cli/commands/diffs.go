package commands

import (
	"github.com/spf13/cobra"

	"rmt/internal/config"
	"rmt/internal/storage"
	"rmt/internal/ui"
)

// DiffsCommand handles the diffs command
type DiffsCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  *ui.DiffViewer
}

// NewDiffsCommand creates a new DiffsCommand
func NewDiffsCommand(cfg *config.Config, st storage.Storage, viewer *ui.DiffViewer) *DiffsCommand {
	return &DiffsCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (dc *DiffsCommand) Execute(cmd *cobra.Command, args []string) error {
	summary, err := dc.storage.Load()
	if err != nil {
		return err
	}

	return dc.viewer.View(summary)
}
