package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daybook-backend/internal/app"
)

var (
	journalOwner  string
	journalName   string
	journalPublic bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage journals",
}

var journalCreateCmd = &cobra.Command{
	Use:   "create --owner EMAIL --name NAME [--public]",
	Short: "Create an empty journal and print its ID",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app.App, _ []string) error {
		j, err := a.CreateJournal(ctx, journalOwner, journalName, journalPublic)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), j.ID)
		return nil
	}),
}

func init() {
	journalCreateCmd.Flags().StringVar(&journalOwner, "owner", "", "email of the owning user")
	journalCreateCmd.Flags().StringVar(&journalName, "name", "", "journal name")
	journalCreateCmd.Flags().BoolVar(&journalPublic, "public", false, "make the journal readable by anyone")
	_ = journalCreateCmd.MarkFlagRequired("owner")
	_ = journalCreateCmd.MarkFlagRequired("name")

	journalCmd.AddCommand(journalCreateCmd)
}
