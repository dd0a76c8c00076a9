package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daybook-backend/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
	},
}
