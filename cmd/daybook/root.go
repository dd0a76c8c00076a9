package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daybook-backend/internal/app"
	"github.com/heartmarshall/daybook-backend/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "daybook",
	Short:        "Daybook - journaling backend",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default $CONFIG_PATH or "+config.DefaultPath+")")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(versionCmd)
}

// withApp loads configuration, builds the App and runs fn with a context
// cancelled on SIGINT or SIGTERM. Connections are closed afterwards.
func withApp(fn func(ctx context.Context, cmd *cobra.Command, a *app.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
		defer cancel()

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		a := app.New(cfg)
		defer func() {
			if err := a.Close(); err != nil {
				a.Logger().Error("close", "error", err)
			}
		}()

		return fn(ctx, cmd, a, args)
	}
}
