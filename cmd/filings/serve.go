package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conversion HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		service, err := newService(cmd, log)
		if err != nil {
			return err
		}

		cfg := common.LoadConfig()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		e := server.New(server.NewHandler(service, log), cfg.Server)

		errCh := make(chan error, 1)
		go func() {
			if err := e.Start(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()
		log.Info("serving", "addr", cfg.Server.Addr)

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides SERVER_ADDR)")

	rootCmd.AddCommand(serveCmd)
}
