package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daybook-backend/internal/app"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

var notifyDate string

var notifyCmd = &cobra.Command{
	Use:   "notify [--date YYYY-MM-DD]",
	Short: "Email subscribers about the posts of a day",
	Long:  "Sends one email per subscriber and post dated --date (yesterday in UTC by default). Already notified subscribers are skipped.",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app.App, _ []string) error {
		day, err := notifyDay(notifyDate, time.Now())
		if err != nil {
			return err
		}

		report, err := a.Notify(ctx, day)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: posts %d, sent %d, skipped %d, failed %d\n",
			day, report.Posts, report.Sent, report.Skipped, report.Failed)
		return err
	}),
}

func init() {
	notifyCmd.Flags().StringVar(&notifyDate, "date", "", "post date to notify about (default: yesterday, UTC)")
}

func notifyDay(flag string, now time.Time) (domain.Date, error) {
	if flag == "" {
		return domain.DateOf(now.UTC()).AddDays(-1), nil
	}
	day, err := domain.ParseDate(flag)
	if err != nil {
		return domain.Date{}, fmt.Errorf("--date: %w", err)
	}
	return day, nil
}
