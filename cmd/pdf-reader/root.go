package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdf-reader/internal/app"
	"pdf-reader/internal/config"
	"pdf-reader/internal/logger"
)

type rootOptions struct {
	configFile string
	logLevel   string
	platform   string
	jsonLogs   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "pdf-reader",
		Short:   "Desktop PDF reader",
		Version: app.AppVersion,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}

			application, err := app.NewApplication(cfg, log)
			if err != nil {
				log.Error("Application", err, nil)
				return err
			}
			return application.Run()
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pdf-reader/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.platform, "platform", "", "menu layout: auto, macos or other")
	flags.BoolVar(&opts.jsonLogs, "json-logs", false, "write logs as JSON")

	cmd.AddCommand(newMenuCmd(opts))
	return cmd
}

// load reads the config and applies any flags that were set explicitly.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("platform") {
		cfg.Platform = o.platform
	}
	if flags.Changed("json-logs") {
		cfg.Log.JSON = o.jsonLogs
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Log.JSON {
		return logger.NewJSONLogger(level), nil
	}
	return logger.NewConsoleLogger(level), nil
}
