package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daybook-backend/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, _ *cobra.Command, a *app.App, _ []string) error {
		return a.Serve(ctx)
	}),
}
