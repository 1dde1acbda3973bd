package internal

import (
	"fmt"

	"github.com/wikisync/wikisync/internal/config"
	"github.com/wikisync/wikisync/internal/errs"
	"github.com/wikisync/wikisync/internal/globalconfig"
	"github.com/wikisync/wikisync/internal/middleware"
	"github.com/wikisync/wikisync/internal/store"
	syncer "github.com/wikisync/wikisync/internal/sync"
	"github.com/wikisync/wikisync/internal/utils"

	"github.com/spf13/cobra"
)

func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [languages...]",
		Short: "Ensure the freshest dump snapshot is stored locally",
		Long: `Ensure the freshest dump snapshot is stored locally.

For each language, sync compares the dump server's Last-Modified timestamp with
the newest local snapshot and downloads a new one only when the remote is
strictly newer. The chosen snapshot path is printed to stdout, one per
language, ready to be registered as batch-job input.

Examples:
  wikisync sync                 # sync the default language (en)
  wikisync sync en de           # sync specific languages
  wikisync sync --all           # sync every tracked language
  wikisync sync en --offline    # use whatever is stored, no network`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			offline, _ := cmd.Flags().GetBool("offline")

			if all && len(args) > 0 {
				return middleware.FlagComboError(errs.AllWithNamedLanguages)
			}

			pconf, err := middleware.Get[*globalconfig.PersistentConfig](cmd, middleware.CtxKeyPConfig)
			if err != nil {
				return err
			}

			languages := args
			if all {
				languages = pconf.Languages
				if len(languages) == 0 {
					return middleware.FlagComboError(errs.NoTrackedLanguages)
				}
			}
			if len(languages) == 0 {
				languages = []string{"en"}
			}

			for _, lang := range languages {
				if !utils.ValidLanguage(lang) {
					return middleware.FlagComboError(errs.InvalidLanguageCode, lang)
				}
			}

			conf := config.DefaultSyncConfig()
			if offline {
				conf = config.DefaultOfflineConfig()
			}
			if pconf.DumpURL != "" {
				conf.DumpURLTemplate = pconf.DumpURL
			}

			manager := syncer.New(&conf, nil, store.NewFS(pconf.StorageRoot))

			for _, lang := range languages {
				path, err := manager.Execute(cmd.Context(), lang, conf.CheckRemote)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Sync every language tracked in the config")
	cmd.Flags().Bool("offline", false, "Skip the remote freshness check")

	return cmd
}
