package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Vprince099/restaurant-scheduler/pkg/config"
	"github.com/Vprince099/restaurant-scheduler/pkg/logger"
)

// App holds what every command needs
type App struct {
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	app := &App{}
	var logLevel string

	rootCmd := &cobra.Command{
		Use:          "scheduler",
		Short:        "Restaurant shift scheduler",
		Long:         `Generate a week of restaurant shifts from a roster file and staff them automatically.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel == "" {
				config.LoadDotEnv()
				if cfg, err := config.Load(); err == nil {
					logLevel = cfg.LogLevel
				}
			}
			app.log = logger.NewWithOutput(logLevel, cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL")

	rootCmd.AddCommand(runCmd(app))
	rootCmd.AddCommand(generateCmd(app))
	rootCmd.AddCommand(assignCmd(app))
	rootCmd.AddCommand(validateCmd(app))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
