package internal

import (
	"github.com/wikisync/wikisync/internal/initiator"
	"github.com/wikisync/wikisync/internal/logger"

	"github.com/spf13/cobra"
)

func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the wikisync configuration",
		Long: `Initialize wikisync configuration.
This command will:
- Create the storage root directory for dump snapshots
- Create the configuration directory in ~/.config/wikisync
- Save the storage root and tracked languages in the global configuration`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storageRoot, _ := cmd.Flags().GetString("storage-root")
			languages, _ := cmd.Flags().GetStringSlice("languages")

			if err := initiator.New(storageRoot, languages, nil).Execute(); err != nil {
				return err
			}

			logger.Success("Initialized wikisync configuration")
			return nil
		},
	}

	cmd.Flags().String("storage-root", "", "Directory holding dump snapshots (default ~/wikisync)")
	cmd.Flags().StringSlice("languages", nil, "Languages to track, e.g. en,de")

	return cmd
}
