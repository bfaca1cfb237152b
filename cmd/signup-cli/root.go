package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/internal/config"
	"github.com/goliatone/go-signupform/internal/logging"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/uischema"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "signup-cli",
		Short:         "Serve, prompt and validate the signup form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.envFile, "env-file", "", ".env file with SIGNUP_* variables")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newPromptCmd(a))
	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newSchemaCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	logger, err := logging.NewWithWriter(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// form builds the descriptor with the configured copy. Overlay files from
// form.copy_dir are applied last.
func (a *app) form() (model.Form, error) {
	decorators := []model.Decorator{
		model.WithTitle(a.cfg.Form.Title),
		model.WithIntro(a.cfg.Form.Intro),
	}
	if dir := a.cfg.Form.CopyDir; dir != "" {
		store, err := uischema.LoadFS(os.DirFS(dir))
		if err != nil {
			return model.Form{}, fmt.Errorf("load copy overlays: %w", err)
		}
		decorators = append(decorators, uischema.NewDecorator(store))
	}
	return model.SignupForm(decorators...)
}
