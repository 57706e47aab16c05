package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/filingworks/filing-converter/constants"
	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/filing"
	"github.com/filingworks/filing-converter/internal/workbook"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert one filing to a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jurisdictionID, _ := cmd.Flags().GetString("jurisdiction")
		if jurisdictionID == "" {
			return fmt.Errorf("--jurisdiction is required")
		}
		outFormat, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		log := newLogger()
		service, err := newService(cmd, log)
		if err != nil {
			return err
		}

		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		name := filepath.Base(path)
		format := constants.MapExtToFormat(filepath.Ext(name))
		if format == "" {
			return common.NewAppError("CONVERT_EXT", name, common.ErrUnsupportedFormat)
		}

		res, err := service.Convert(cmd.Context(), jurisdictionID, filing.Document{
			Name:   name,
			Format: filing.Format(format),
			Data:   data,
		})
		if err != nil {
			return err
		}

		var out []byte
		switch outFormat {
		case "xlsx":
			out, err = workbook.WriteXLSX(res.Workbook)
		case "csv":
			if len(res.Workbook.Tables) == 0 {
				return fmt.Errorf("no tables produced")
			}
			out, err = workbook.WriteCSV(res.Workbook.Tables[0])
		case "json":
			out, err = workbook.WriteJSON(res.Workbook)
		default:
			return fmt.Errorf("unknown output format %q (xlsx, csv, or json)", outFormat)
		}
		if err != nil {
			return err
		}

		if outPath == "" {
			outPath = strings.TrimSuffix(path, filepath.Ext(path)) + "." + outFormat
		}
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return err
		}

		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		fmt.Printf("Converted %s (%d pages, %d tables, %d skipped rows)\n",
			name, res.Pages, len(res.Workbook.Tables), res.Workbook.TotalSkipped())
		fmt.Printf("Output: %s\n", outPath)
		return nil
	},
}

func init() {
	convertCmd.Flags().String("format", "xlsx", "output format: xlsx, csv, or json")
	convertCmd.Flags().String("out", "", "output file path (default: input name with new extension)")

	rootCmd.AddCommand(convertCmd)
}
