package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rorical/SheetRelay/internal/selector"
	"github.com/Rorical/SheetRelay/internal/utils"
	"github.com/Rorical/SheetRelay/internal/workbook"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "List the sheets of a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		file, err := selector.Load(args[0])
		if err != nil {
			return err
		}

		summary, err := workbook.Summarize(file.Path)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", file.Name, utils.FormatSize(file.Size))
		for i, sheet := range summary.Sheets {
			dim := sheet.Dimension
			if dim == "" {
				dim = "empty"
			}
			fmt.Printf("  %d. %s  [%s]\n", i+1, sheet.Name, dim)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
