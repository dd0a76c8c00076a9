package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/daybook-backend/internal/app"
)

var (
	seedFile    string
	seedJournal string
)

var seedCmd = &cobra.Command{
	Use:   "seed --file seed.yaml [--journal ID]",
	Short: "Load metric groups and values from a YAML file",
	Long: `Creates or updates a journal's metric groups and metrics and writes one
value per day starting at start_date. Running the same file again leaves the
journal unchanged. Groups and metrics missing from the file are deactivated.`,
	Args: cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app.App, _ []string) error {
		var journalID uuid.UUID
		if seedJournal != "" {
			id, err := uuid.Parse(seedJournal)
			if err != nil {
				return fmt.Errorf("--journal: %w", err)
			}
			journalID = id
		}

		report, err := a.Seed(ctx, seedFile, journalID)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(),
			"groups: %d, metrics: %d, posts: %d (%d new), values: %d written, %d cleared\n",
			report.Groups, report.Metrics, report.Posts, report.PostsCreated, report.Values, report.Cleared)
		return nil
	}),
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "path to the YAML seed file")
	seedCmd.Flags().StringVar(&seedJournal, "journal", "", "journal ID (overrides journal_id in the file)")
	_ = seedCmd.MarkFlagRequired("file")
}
