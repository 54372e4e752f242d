package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/pkg/auth"
	"taskboard/pkg/client"
)

// app carries what every command needs. Commands read the credential from
// the token store and pass it into each client call.
type app struct {
	cfg    *config.Config
	tokens *auth.FileStore
	now    func() time.Time

	apiURL string
	aiURL  string
}

func newApp() *app {
	return &app{now: func() time.Time { return time.Now().UTC() }}
}

func (a *app) load() error {
	if a.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.apiURL != "" {
		a.cfg.APIURL = a.apiURL
	}
	if a.aiURL != "" {
		a.cfg.AIURL = a.aiURL
	}
	if a.tokens == nil {
		a.tokens = auth.NewFileStore(config.TokenPath())
	}
	return nil
}

func (a *app) client() *client.Client { return client.New(a.cfg.APIURL) }

func (a *app) assist() *client.Assist { return client.NewAssist(a.cfg.AIURL) }

func (a *app) token() (auth.Token, error) { return a.tokens.Load() }

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "taskboard",
		Short:        "taskboard - task list and dashboard for the task API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "task API base URL (default from config)")
	root.PersistentFlags().StringVar(&a.aiURL, "ai-url", "", "AI-assist service base URL (default from config)")

	root.AddCommand(
		newLoginCmd(a),
		newSignupCmd(a),
		newLogoutCmd(a),
		newDashboardCmd(a),
		newListCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newCompleteCmd(a),
		newExportCmd(a),
		newAdminReportCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
