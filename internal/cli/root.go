// Package cli implements the mlpipe command line tool.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/deepmining/go-mlpipeline/internal/config"
	"github.com/deepmining/go-mlpipeline/internal/env"
	"github.com/deepmining/go-mlpipeline/internal/logging"
)

type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// Execute runs the mlpipe root command.
func Execute() error {
	a := &app{}

	var envFile string

	root := &cobra.Command{
		Use:           "mlpipe",
		Short:         "Inspect, validate and draw ML pipeline metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			err := env.LoadDotEnv(envFile)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.NewLogger(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel))

			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional .env file loaded before reading the environment")

	root.AddCommand(newValidateCmd(a), newInspectCmd(a), newDrawCmd(a))

	return root.Execute()
}
