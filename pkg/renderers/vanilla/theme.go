package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

type themeView struct {
	Name         string            `json:"name,omitempty"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVarsStyle string            `json:"css_vars_style,omitempty"`
	Stylesheet   string            `json:"stylesheet,omitempty"`
}

// AssetStylesheet is the theme asset linked from the page head.
const AssetStylesheet = "forms.stylesheet"

func buildThemeView(cfg *theme.RendererConfig) themeView {
	if cfg == nil {
		return themeView{}
	}
	return themeView{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		Tokens:       copyStringMap(cfg.Tokens),
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
		Stylesheet:   assetURL(cfg, AssetStylesheet),
	}
}

func assetURL(cfg *theme.RendererConfig, key string) string {
	if cfg == nil || cfg.AssetURL == nil {
		return ""
	}
	url := strings.TrimSpace(cfg.AssetURL(key))
	if unsafeCSS(url) || strings.ContainsAny(url, "\"'") {
		return ""
	}
	return url
}

// partial returns the template configured under key, or fallback.
func partial(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil {
		return fallback
	}
	if name := strings.TrimSpace(cfg.Partials[key]); name != "" {
		return name
	}
	return fallback
}

// cssVarsStyle renders vars as a :root rule. Names gain a "--" prefix when
// missing; entries whose name or value could break out of the declaration
// are skipped.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		name := strings.TrimSpace(key)
		value := strings.TrimSpace(vars[key])
		if name == "" || value == "" || unsafeCSS(name) || unsafeCSS(value) {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("; ")
	}
	if b.Len() == 0 {
		return ""
	}
	return ":root { " + b.String() + "}"
}

func unsafeCSS(s string) bool {
	return strings.ContainsAny(s, "<>{};\\")
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
