// Package main is the entry point for the filings CLI: convert one filing,
// batch-convert a directory, or list the supported jurisdictions.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/filingworks/filing-converter/internal/convert"
	"github.com/filingworks/filing-converter/internal/jurisdiction"
	"github.com/filingworks/filing-converter/internal/profile"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "filings",
	Short: "Convert campaign finance and disclosure filings to workbooks",
	Long: `filings converts jurisdiction-specific PDF and TXT filings into
normalized tabular workbooks. Each jurisdiction has a built-in profile that
knows its schedule headers and row layouts; --patterns can layer extra header
patterns on top of a profile.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("jurisdiction", "", "jurisdiction ID (see 'filings jurisdictions')")
	rootCmd.PersistentFlags().String("patterns", "", "path to a JSON pattern overlay file")
	rootCmd.PersistentFlags().Duration("timeout", 0, "per-conversion timeout (0 disables)")
}

// newService builds the conversion service from the persistent flags, applying
// a pattern overlay when one was given.
func newService(cmd *cobra.Command, log *slog.Logger) (*convert.Service, error) {
	registry := jurisdiction.DefaultRegistry()

	if path, _ := cmd.Flags().GetString("patterns"); path != "" {
		overlay, err := profile.Load(path)
		if err != nil {
			return nil, err
		}
		base, err := registry.Get(overlay.Jurisdiction)
		if err != nil {
			return nil, err
		}
		modified, err := overlay.Apply(base)
		if err != nil {
			return nil, err
		}
		registry.Replace(modified)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	return convert.NewService(registry, timeout, log), nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
