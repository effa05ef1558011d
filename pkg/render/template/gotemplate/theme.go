package gotemplate

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	themeGlobal = "theme"
	assetGlobal = "asset"
)

func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return nil
	}
	tokens := maps.Clone(cfg.Tokens)
	cssVars := maps.Clone(cfg.CSSVars)
	return map[string]any{
		"name":           cfg.Theme,
		"variant":        cfg.Variant,
		"tokens":         stringMapAny(tokens),
		"partials":       stringMapAny(maps.Clone(cfg.Partials)),
		"css_vars":       stringMapAny(cssVars),
		"css_vars_style": cssVarsStyle(cssVars),
		"json":           themeJSON(cfg.Theme, cfg.Variant, tokens, cssVars),
	}
}

// assetFunc resolves theme asset keys; unknown keys and a missing resolver
// yield "".
func assetFunc(cfg *theme.RendererConfig) func(string) string {
	return func(key string) string {
		if cfg == nil || cfg.AssetURL == nil {
			return ""
		}
		return cfg.AssetURL(strings.TrimSpace(key))
	}
}

func stringMapAny(in map[string]string) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func themeJSON(name, variant string, tokens, cssVars map[string]string) string {
	payload := struct {
		Name    string            `json:"name,omitempty"`
		Variant string            `json:"variant,omitempty"`
		Tokens  map[string]string `json:"tokens,omitempty"`
		CSSVars map[string]string `json:"cssVars,omitempty"`
	}{name, variant, tokens, cssVars}
	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(data)
}
