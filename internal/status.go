package internal

import (
	"github.com/wikisync/wikisync/internal/globalconfig"
	"github.com/wikisync/wikisync/internal/middleware"
	"github.com/wikisync/wikisync/internal/status"
	"github.com/wikisync/wikisync/internal/store"

	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show locally stored dump snapshots",
		Long: `Show every dump snapshot stored under the storage root,
grouped by tracked language, with the freshest entry highlighted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pconf, err := middleware.Get[*globalconfig.PersistentConfig](cmd, middleware.CtxKeyPConfig)
			if err != nil {
				return err
			}

			languages := pconf.Languages
			if len(args) > 0 {
				languages = args
			}

			return status.New(store.NewFS(pconf.StorageRoot), languages).Execute()
		},
	}
}
