// Package config loads the signup server settings from an optional YAML
// file, an optional .env file and the process environment, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure returned by Load.
var ErrInvalid = errors.New("config: invalid configuration")

const envPrefix = "SIGNUP_"

// Config holds every setting of the signup binaries.
type Config struct {
	Addr    string        `yaml:"addr" validate:"required,hostname_port"`
	Log     LogConfig     `yaml:"log"`
	Form    FormConfig    `yaml:"form"`
	Theme   ThemeConfig   `yaml:"theme"`
	Session SessionConfig `yaml:"session"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// FormConfig overrides the copy shown above the form. CopyDir names a
// directory of JSON/YAML copy overlays; TemplatesDir one of HTML templates
// that replace the built-in ones by file name.
type FormConfig struct {
	Title        string `yaml:"title" validate:"required"`
	Intro        string `yaml:"intro"`
	CopyDir      string `yaml:"copy_dir"`
	TemplatesDir string `yaml:"templates_dir"`
}

// ThemeConfig describes the theme served with the HTML form. Variants maps
// a variant name to the tokens it overrides.
type ThemeConfig struct {
	Name        string                       `yaml:"name"`
	Variant     string                       `yaml:"variant"`
	Tokens      map[string]string            `yaml:"tokens"`
	CSSVars     map[string]string            `yaml:"css_vars"`
	Variants    map[string]map[string]string `yaml:"variants"`
	AssetPrefix string                       `yaml:"asset_prefix"`
	Stylesheet  string                       `yaml:"stylesheet"`
}

// SessionConfig bounds the per-visitor form state kept by the server.
type SessionConfig struct {
	Limit      int    `yaml:"limit" validate:"min=1"`
	CookieName string `yaml:"cookie_name" validate:"required"`
	CSRFField  string `yaml:"csrf_field" validate:"required"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr: ":8080",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Form: FormConfig{
			Title: "Welcome on board!",
			Intro: "We just need a little bit of data from you to get you started 🚀",
		},
		Session: SessionConfig{
			Limit:      1024,
			CookieName: "signup_session",
			CSRFField:  "_csrf",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path and the
// environment. Variables from envFile only apply when the process
// environment does not already define them. Both paths are optional.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	fileEnv := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return Config{}, fmt.Errorf("config: read env file %s: %w", envFile, err)
		}
		fileEnv = values
	}
	lookup := func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := fileEnv[key]
		return value, ok
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg.
func (c Config) Validate() error {
	if err := validate().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"ADDR":          &cfg.Addr,
		"LOG_LEVEL":     &cfg.Log.Level,
		"LOG_FORMAT":    &cfg.Log.Format,
		"TITLE":         &cfg.Form.Title,
		"INTRO":         &cfg.Form.Intro,
		"COPY_DIR":      &cfg.Form.CopyDir,
		"TEMPLATES_DIR": &cfg.Form.TemplatesDir,
		"THEME":         &cfg.Theme.Name,
		"THEME_VARIANT": &cfg.Theme.Variant,
		"CSRF_FIELD":    &cfg.Session.CSRFField,
	}
	for key, target := range strs {
		if value, ok := lookup(envPrefix + key); ok {
			*target = strings.TrimSpace(value)
		}
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if value, ok := lookup(envPrefix + "SESSION_LIMIT"); ok {
		limit, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %sSESSION_LIMIT: %v", ErrInvalid, envPrefix, err)
		}
		cfg.Session.Limit = limit
	}
	return nil
}
