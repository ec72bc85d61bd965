package cli

import (
	"os"

	"github.com/spf13/cobra"

	"sip-planner/config"
	"sip-planner/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg      config.Config
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "sipcalc",
		Short:        "Step-up SIP growth calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.LogLevel = a.logLevel
			}
			a.cfg = cfg

			logger.Setup(logger.Config{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override SIP_LOG_LEVEL (debug, info, warn, error)")
	cmd.AddCommand(newServeCmd(a), newCalcCmd(a))
	return cmd
}
