package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/filingworks/filing-converter/internal/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Convert every matching filing in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jurisdictionID, _ := cmd.Flags().GetString("jurisdiction")
		if jurisdictionID == "" {
			return fmt.Errorf("--jurisdiction is required")
		}
		pattern, _ := cmd.Flags().GetString("pattern")
		outDir, _ := cmd.Flags().GetString("out")

		srcDir := args[0]
		if outDir == "" {
			outDir = filepath.Join(srcDir, "converted")
		}

		log := newLogger()
		service, err := newService(cmd, log)
		if err != nil {
			return err
		}

		runner := batch.NewRunner(service, log)
		summaries, stats, err := runner.Run(cmd.Context(), jurisdictionID, srcDir, pattern, outDir)
		if err != nil {
			return err
		}

		for _, s := range summaries {
			fmt.Printf("%-40s %3d pages %3d tables %5d rows %3d skipped -> %s\n",
				s.Filename, s.Pages, s.Tables, s.Rows, s.SkippedRows, s.OutputPath)
		}
		fmt.Printf("Batch complete: %d matched, %d converted, %d failed\n",
			stats.Matched, stats.Converted, stats.Failed)
		return nil
	},
}

func init() {
	batchCmd.Flags().String("pattern", "*.pdf", "filename glob to match within the directory")
	batchCmd.Flags().String("out", "", "output directory (default: <dir>/converted)")

	rootCmd.AddCommand(batchCmd)
}
