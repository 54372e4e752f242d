package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	rcron "github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"taskboard/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change saved settings",
	}
	cmd.AddCommand(newConfigShowCmd(a), newConfigSetCmd())
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a.cfg)
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <api-url|ai-url|window-days|schedule> <value>",
		Short: "Save a setting to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			key, value := args[0], args[1]
			switch key {
			case "api-url":
				cfg.APIURL = value
			case "ai-url":
				cfg.AIURL = value
			case "window-days":
				n, err := strconv.Atoi(value)
				if err != nil || n <= 0 {
					return fmt.Errorf("window-days must be a positive integer, got %q", value)
				}
				cfg.WindowDays = n
			case "schedule":
				if _, err := rcron.ParseStandard(value); err != nil {
					return fmt.Errorf("schedule %q: %w", value, err)
				}
				cfg.Schedule = value
			default:
				return fmt.Errorf("unknown setting %q", key)
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", key, config.Path())
			return nil
		},
	}
}
