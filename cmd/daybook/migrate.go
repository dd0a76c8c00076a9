package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daybook-backend/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply or inspect database migrations",
	Long:      "Runs the embedded goose migrations. Without an argument, applies all pending migrations.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app.App, args []string) error {
		command := "up"
		if len(args) == 1 {
			command = args[0]
		}
		return a.Migrate(ctx, command, cmd.OutOrStdout())
	}),
}
