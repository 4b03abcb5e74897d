package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"newsletter-studio/internal/redisclient"
	"newsletter-studio/internal/storage"

	"github.com/spf13/cobra"
)

// backupCmd groups backup-slot subcommands.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Inspect or clear the Redis backup slot",
}

var backupShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current backup document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewBackupStore(rdb)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		backup, err := store.Load(ctx)
		if err != nil {
			return err
		}
		if backup == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No backup available.")
			return nil
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved at: %s\n", backup.SavedAt.Format(time.RFC3339))
		out, err := json.MarshalIndent(backup.Data, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var backupClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the backup slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewBackupStore(rdb)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := store.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Backup cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupShowCmd)
	backupCmd.AddCommand(backupClearCmd)
}
