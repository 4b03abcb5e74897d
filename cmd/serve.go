package cmd

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsletter-studio/internal/handler"
	"newsletter-studio/internal/redisclient"
	"newsletter-studio/internal/storage"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the rendering HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		shutdownTimeout, err := time.ParseDuration(cfg.Server.ShutdownTimeout)
		if err != nil {
			return err
		}

		// Redis backs the single-slot backup API; the rendering routes work
		// without it.
		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		backups := storage.NewBackupStore(rdb)

		h := handler.New(backups, slog.Default())
		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: h.Routes(),
		}

		errc := make(chan error, 1)
		go func() {
			slog.Info("listening", "addr", cfg.Server.Addr)
			errc <- srv.ListenAndServe()
		}()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errc:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case s := <-sigc:
			log.Printf("received signal: %s, shutting down", s)
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
