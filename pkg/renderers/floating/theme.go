package floating

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Asset keys resolved through the theme's AssetURL.
const AssetStylesheet = "floatform.stylesheet"

// BuiltinThemes returns the manifests shipped with the renderer, keyed by
// name. "default" carries no overrides.
func BuiltinThemes() map[string]*theme.Manifest {
	return map[string]*theme.Manifest{
		"default": {
			Name:    "default",
			Version: "1.0.0",
		},
		"midnight": {
			Name:    "midnight",
			Version: "1.0.0",
			Tokens: map[string]string{
				"brand":             "#eab308",
				TokenControlValid:   "border-slate-600",
				TokenControlInvalid: "border-rose-400",
				TokenError:          "text-sm text-rose-400 font-['Poppins']",
			},
			Variants: map[string]theme.Variant{
				"contrast": {
					Tokens: map[string]string{
						"brand":             "#facc15",
						TokenControlValid:   "border-white",
						TokenControlInvalid: "border-red-500",
					},
				},
			},
		},
	}
}

// ThemeConfig resolves a built-in theme and variant into a renderer config.
// Variant tokens and templates override the base manifest. An empty name
// yields nil.
func ThemeConfig(name, variant string) (*theme.RendererConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	manifest, ok := BuiltinThemes()[name]
	if !ok {
		return nil, fmt.Errorf("floating renderer: unknown theme %q", name)
	}
	return ManifestConfig(manifest, variant)
}

// ManifestConfig flattens manifest and one of its variants into the config
// the renderer consumes. Tokens are also exposed as CSS custom properties
// named --<token>, skipping the class tokens.
func ManifestConfig(manifest *theme.Manifest, variant string) (*theme.RendererConfig, error) {
	if manifest == nil {
		return nil, fmt.Errorf("floating renderer: theme manifest is nil")
	}
	variant = strings.TrimSpace(variant)

	tokens := copyStrings(manifest.Tokens)
	partials := copyStrings(manifest.Templates)
	assets := copyStrings(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix

	if variant != "" {
		v, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("floating renderer: theme %q has no variant %q", manifest.Name, variant)
		}
		tokens = mergeStrings(tokens, v.Tokens)
		partials = mergeStrings(partials, v.Templates)
		assets = mergeStrings(assets, v.Assets.Files)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}

	cssVars := make(map[string]string)
	for key, value := range tokens {
		if strings.HasPrefix(key, "floatform.") {
			continue
		}
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := assets[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" {
				return file
			}
			return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
		},
	}, nil
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key]+";")
	}
	return strings.Join(parts, " ")
}

func copyStrings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStrings(base, overrides map[string]string) map[string]string {
	for key, value := range overrides {
		base[key] = value
	}
	return base
}
