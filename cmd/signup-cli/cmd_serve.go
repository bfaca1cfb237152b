package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-signupform/internal/config"
	"github.com/goliatone/go-signupform/internal/metrics"
	"github.com/goliatone/go-signupform/internal/server"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/renderers/jsonview"
	"github.com/goliatone/go-signupform/pkg/renderers/tui"
	"github.com/goliatone/go-signupform/pkg/renderers/vanilla"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the signup form over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Addr
			}
			form, err := a.form()
			if err != nil {
				return err
			}

			html, err := vanilla.New(vanilla.WithTemplatesDir(a.cfg.Form.TemplatesDir))
			if err != nil {
				return err
			}
			text, err := tui.New()
			if err != nil {
				return err
			}

			options := []server.Option{
				server.WithLogger(a.logger),
				server.WithMetrics(metrics.New()),
				server.WithRenderers(html, jsonview.New(), text),
				server.WithSessionLimit(a.cfg.Session.Limit),
				server.WithCookieName(a.cfg.Session.CookieName),
				server.WithCSRFField(a.cfg.Session.CSRFField),
			}
			if manifest := themeManifest(a.cfg.Theme); manifest != nil {
				options = append(options, server.WithViewOptions(
					orchestrator.WithThemeManifests(manifest.Name, a.cfg.Theme.Variant, manifest),
				))
			}

			gin.SetMode(gin.ReleaseMode)
			srv, err := server.New(form, options...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

// themeManifest turns the configured theme into a go-theme manifest, or nil
// when no theme is named. CSS vars are folded into the tokens.
func themeManifest(cfg config.ThemeConfig) *theme.Manifest {
	if cfg.Name == "" {
		return nil
	}
	tokens := map[string]string{}
	for key, value := range cfg.Tokens {
		tokens[key] = value
	}
	for key, value := range cfg.CSSVars {
		tokens[key] = value
	}

	manifest := &theme.Manifest{
		Name:     cfg.Name,
		Version:  "1.0.0",
		Tokens:   tokens,
		Variants: map[string]theme.Variant{},
	}
	for name, overrides := range cfg.Variants {
		manifest.Variants[name] = theme.Variant{Tokens: overrides}
	}
	if _, ok := manifest.Variants[cfg.Variant]; cfg.Variant != "" && !ok {
		manifest.Variants[cfg.Variant] = theme.Variant{}
	}
	if cfg.Stylesheet != "" {
		manifest.Assets = theme.Assets{
			Prefix: cfg.AssetPrefix,
			Files:  map[string]string{vanilla.AssetStylesheet: cfg.Stylesheet},
		}
	}
	return manifest
}
