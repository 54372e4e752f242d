package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskboard/pkg/client"
)

func newExportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:       "export <csv|excel|pdf>",
		Short:     "Download the task export",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"csv", "excel", "pdf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := client.ParseFormat(args[0])
			if err != nil {
				return err
			}
			tok, err := a.token()
			if err != nil {
				return err
			}
			data, err := a.client().Export(cmd.Context(), tok, format)
			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}
			path := output
			if path == "" {
				path = format.Filename()
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", path, len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default tasks.<format>)")
	return cmd
}

func newAdminReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "admin-report",
		Short: "Print the AI service's admin report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := a.token()
			if err != nil {
				return err
			}
			raw, err := a.assist().AdminReport(cmd.Context(), tok)
			if err != nil {
				return fmt.Errorf("admin report: %w", err)
			}
			var buf bytes.Buffer
			if err := json.Indent(&buf, raw, "", "  "); err != nil {
				buf.Reset()
				buf.Write(raw)
			}
			buf.WriteByte('\n')
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}
}
