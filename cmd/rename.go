package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dsptools/hanrename/internal/adapter"
	"github.com/dsptools/hanrename/internal/engine"
)

var renameDryRunFlag bool

// renameCmd represents the rename command.
var renameCmd = newRenameCmd()

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [directory]",
		Short: "Rename Chinese-named entries under a directory",
		Long:  renameLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}

			dictionary, err := loadDictionary()
			if err != nil {
				return err
			}

			translator, client, err := buildTranslator()
			if err != nil {
				return err
			}

			ctx := c.Context()

			ui.RunStarted(string(root), renameDryRunFlag, dictionary.Len())

			if err := client.Ready(ctx); err != nil {
				// Not fatal: dictionary-only names still resolve, and
				// per-candidate translation errors are reported anyway.
				slog.Warn("translator readiness check failed", "error", err)
			}

			scanner := engine.NewScanner(treeFS, excludeList())

			candidates, err := scanner.Collect(root)
			if err != nil {
				return err
			}

			if len(candidates) == 0 {
				ui.NoCandidates()
				return nil
			}

			ui.CandidatesFound(len(candidates))

			resolver := engine.NewResolver(dictionary, translator)
			runner := engine.NewRunner(treeFS, resolver, renameDryRunFlag)

			summary := runner.Run(ctx, candidates, ui)
			ui.RunSummary(summary)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&renameDryRunFlag, dryRunFlagName, "n", false, "show what would be renamed without making changes")

	return cmd
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

// buildTranslator assembles the LibreTranslate client wrapped in the LRU
// cache. The raw client is returned too, for the readiness probe.
func buildTranslator() (adapter.Translator, *adapter.LibreClient, error) {
	client := adapter.NewLibreClient(
		viper.GetString(translatorURLKey),
		viper.GetString(translatorAPIKeyKey),
		time.Duration(viper.GetInt(translatorTimeout))*time.Second,
	)

	cached, err := adapter.NewCachedTranslator(client, viper.GetInt(translatorCacheKey))
	if err != nil {
		return nil, nil, err
	}

	return cached, client, nil
}
