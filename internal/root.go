package internal

import (
	"fmt"

	"github.com/wikisync/wikisync/internal/logger"

	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikisync",
		Short: "Local mirror manager for Wikipedia dump snapshots",
		Long: `Wikisync keeps a local mirror of Wikipedia database dump snapshots.
It checks the dump server for a newer compressed snapshot per language, streams it
through a bzip2 decoder into a managed storage root, and prints the freshest local
snapshot path so a batch job can pick it up as input.`,
		Example: `wikisync sync en de`,
		Run: func(cmd *cobra.Command, _ []string) {
			versionFlag, _ := cmd.Flags().GetBool("version")
			if versionFlag {
				fmt.Printf("Version: %s\n", Version)
			}
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.ConfigureLoggerFromFlags()
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.Flags().BoolP("version", "v", false, "Print version information")
	cmd.PersistentFlags().BoolVar(&logger.FlagVerbose, "verbose", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&logger.FlagQuiet, "quiet", "q", false, "Only log errors")
	cmd.PersistentFlags().BoolVar(&logger.FlagJSON, "json-logs", false, "Log as JSON (CI)")

	RegisterSubCommands(cmd)

	return cmd
}

func Execute() error {
	root := NewRootCmd()

	if err := root.Execute(); err != nil {
		logger.Debug("Failed to execute root command: %v", err)
		return err
	}
	return nil
}
