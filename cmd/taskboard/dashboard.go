package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"taskboard/internal/digest"
	"taskboard/pkg/dashboard"
	"taskboard/pkg/report"
)

func (a *app) summary(ctx context.Context, days int) (dashboard.Summary, error) {
	tok, err := a.token()
	if err != nil {
		return dashboard.Summary{}, err
	}
	tasks, err := a.client().ListTasks(ctx, tok)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("list tasks: %w", err)
	}
	if days <= 0 {
		days = a.cfg.WindowDays
	}
	return dashboard.Build(tasks, a.now(), days), nil
}

func newDashboardCmd(a *app) *cobra.Command {
	var days int
	var asHTML, asJSON bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show due, upcoming and recently completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := a.summary(cmd.Context(), days)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			case asHTML:
				page, err := dashboard.HTML(sum)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, page)
				return err
			default:
				_, err = fmt.Fprint(out, dashboard.Markdown(sum))
				return err
			}
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, fmt.Sprintf("completed-task window in days (default %d)", report.DefaultWindowDays))
	cmd.Flags().BoolVar(&asHTML, "html", false, "render as HTML")
	cmd.Flags().BoolVar(&asJSON, "json", false, "render as JSON")
	cmd.MarkFlagsMutuallyExclusive("html", "json")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var schedule string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Log a dashboard digest on a cron schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if schedule == "" {
				schedule = a.cfg.Schedule
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc := digest.New(schedule, func(ctx context.Context) error {
				sum, err := a.summary(ctx, 0)
				if err != nil {
					return err
				}
				log.Printf("digest: %d due today, %d upcoming, %d completed in last %d days",
					sum.DueToday, sum.Upcoming, sum.CompletedInRange, sum.WindowDays)
				return nil
			})
			if err := svc.Start(ctx); err != nil {
				return err
			}
			svc.RunNow(ctx)
			<-ctx.Done()
			svc.Stop()
			return nil
		},
	}
	cmd.Flags().StringVar(&schedule, "schedule", "", "cron expression or descriptor, e.g. \"@every 30m\"")
	return cmd
}
