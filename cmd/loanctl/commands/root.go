package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tribeworks/loanflow/internal/client"
	"github.com/tribeworks/loanflow/internal/config"
	"github.com/tribeworks/loanflow/internal/session"
	"github.com/tribeworks/loanflow/internal/session/storage/file"
)

var (
	apiURL  string
	verbose bool

	cfg       *config.Config
	apiClient *client.Client
	sessions  *session.Manager
)

func Execute() error {
	root := &cobra.Command{
		Use:           "loanctl",
		Short:         "Client for the loan approval demo backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out: os.Stderr,
			})
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}

			var err error
			cfg, err = config.LoadFromEnv()
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.APIBaseURL = apiURL
			}

			credentialsFile := cfg.CredentialsFile
			if credentialsFile == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				credentialsFile = filepath.Join(dir, ".loanflow", "credentials.json")
			}

			apiClient = client.New(cfg.APIBaseURL, func() *session.Session {
				return sessions.CurrentUser()
			})
			sessions = session.NewManager(apiClient, file.New(credentialsFile))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides the configured one)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(loginCmd(), logoutCmd(), whoamiCmd(), submitCmd(), stepsCmd(), waitReadyCmd(), teardownCmd())

	err := root.Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}
