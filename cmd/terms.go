package cmd

import (
	"bytes"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// termsCmd represents the terms command.
var termsCmd = newTermsCmd()

func newTermsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "List the active term dictionary",
		Long:  "List every source term and its curated replacement, longest terms first (the order the matcher tries them in).",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			dictionary, err := loadDictionary()
			if err != nil {
				return err
			}

			var buf bytes.Buffer

			table := tablewriter.NewWriter(&buf)
			table.SetHeader([]string{"Source", "Target"})
			table.SetBorder(false)
			table.SetCenterSeparator("")

			for _, entry := range dictionary.Entries() {
				table.Append([]string{entry.Source, entry.Target})
			}

			table.SetFooter([]string{"Total", strconv.Itoa(dictionary.Len())})
			table.Render()

			cmd.Print(buf.String())

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(termsCmd)
}
