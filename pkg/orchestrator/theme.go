package orchestrator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-signupform/pkg/renderers/vanilla"
)

var (
	// ErrThemeNotFound is returned when a selector has no manifest for the
	// requested theme.
	ErrThemeNotFound = errors.New("orchestrator: theme not found")

	// ErrThemeSelection wraps every error raised while resolving a theme.
	ErrThemeSelection = errors.New("orchestrator: select theme")
)

func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		vanilla.PartialPage: "page",
		vanilla.PartialForm: "form",
	}
}

// ManifestSelector picks themes out of an in-memory set of manifests.
type ManifestSelector struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector registers manifests by name.
func NewManifestSelector(manifests ...*theme.Manifest) (*ManifestSelector, error) {
	s := &ManifestSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if err := s.Register(manifest); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register adds a manifest. Names must be unique.
func (s *ManifestSelector) Register(manifest *theme.Manifest) error {
	if s == nil {
		return errors.New("orchestrator: manifest selector is nil")
	}
	if manifest == nil {
		return errors.New("orchestrator: theme manifest is required")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("orchestrator: theme manifest name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.manifests[name]; exists {
		return fmt.Errorf("orchestrator: theme %q already registered", name)
	}
	s.manifests[name] = manifest
	return nil
}

// Select returns the manifest named name. An empty name picks the only
// registered theme, or the first by name when there are several. Unknown
// variants are an error; an empty variant selects the base theme.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s == nil {
		return nil, errors.New("orchestrator: manifest selector is nil")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		names := make([]string, 0, len(s.manifests))
		for key := range s.manifests {
			names = append(names, key)
		}
		if len(names) == 0 {
			return nil, ErrThemeNotFound
		}
		sort.Strings(names)
		name = names[0]
	}

	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("orchestrator: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	if name == "" {
		name = o.defaultTheme
	}
	if variant == "" {
		variant = o.defaultVariant
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrThemeSelection, err)
	}
	if selection == nil {
		return nil, nil
	}
	return rendererConfig(selection, o.themeFallbacks), nil
}

// rendererConfig flattens a selection into what renderers consume. Variant
// tokens, templates and assets override the base manifest; partials fall
// back to fallbacks; every token is also exposed as a "--token" CSS var.
func rendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
		Partials: copyStrings(fallbacks),
	}
	if cfg.Partials == nil {
		cfg.Partials = map[string]string{}
	}

	files := map[string]string{}
	prefix := ""

	if manifest := selection.Manifest; manifest != nil {
		mergeStrings(cfg.Tokens, manifest.Tokens)
		mergeStrings(cfg.Partials, manifest.Templates)
		mergeStrings(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix

		if v, ok := manifest.Variants[selection.Variant]; ok && selection.Variant != "" {
			mergeStrings(cfg.Tokens, v.Tokens)
			mergeStrings(cfg.Partials, v.Templates)
			mergeStrings(files, v.Assets.Files)
			if v.Assets.Prefix != "" {
				prefix = v.Assets.Prefix
			}
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
	}
	cfg.AssetURL = assetResolver(prefix, files)
	return cfg
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(prefix, "/")
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		return prefix + "/" + file
	}
}

func mergeStrings(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}

func copyStrings(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	mergeStrings(out, in)
	return out
}
