package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filingworks/filing-converter/internal/jurisdiction"
)

var jurisdictionsCmd = &cobra.Command{
	Use:   "jurisdictions",
	Short: "List supported jurisdiction IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := jurisdiction.DefaultRegistry()
		for _, id := range registry.IDs() {
			p, err := registry.Get(id)
			if err != nil {
				return err
			}
			fmt.Printf("%-10s %-6s %s\n", p.ID, p.Format, p.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jurisdictionsCmd)
}
