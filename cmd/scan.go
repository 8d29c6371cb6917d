package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dsptools/hanrename/internal/controller"
	"github.com/dsptools/hanrename/internal/engine"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [directory]",
		Short: "Preview candidates using the dictionary only",
		Long:  scanLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}

			dictionary, err := loadDictionary()
			if err != nil {
				return err
			}

			scanner := engine.NewScanner(treeFS, excludeList())

			candidates, err := scanner.Collect(root)
			if err != nil {
				return err
			}

			// The preview never consults a translator, so none is wired.
			resolver := engine.NewResolver(dictionary, nil)

			items := make([]controller.ScanItem, 0, len(candidates))

			for _, candidate := range candidates {
				rel, err := filepath.Rel(string(root), string(candidate.Path))
				if err != nil {
					rel = string(candidate.Path)
				}

				items = append(items, controller.ScanItem{
					Path:     rel,
					Kind:     candidate.Kind,
					Proposed: resolver.PreviewName(filepath.Base(string(candidate.Path))),
				})
			}

			return ui.ScanListing(items)
		},
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
