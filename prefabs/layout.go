package prefabs

import (
	"context"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// LayoutKey is one key produced by a layout script.
type LayoutKey struct {
	Name      string
	Label     string
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Color     string
	Frequency float64
}

// RunLayoutScript runs a tengo layout script with the layout inputs bound
// as globals and decodes its `keys` output.
func RunLayoutScript(ctx context.Context, name string, layout LayoutSpec) ([]LayoutKey, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load layout script %s: %w", name, err)
	}
	return RunLayoutSource(ctx, src, layout)
}

// RunLayoutSource is RunLayoutScript for an in-memory script.
func RunLayoutSource(ctx context.Context, src []byte, layout LayoutSpec) ([]LayoutKey, error) {
	if layout.Octaves <= 0 {
		layout.Octaves = 1
	}
	if layout.BaseFrequency <= 0 {
		layout.BaseFrequency = 261.63
	}
	if layout.KeyWidth <= 0 {
		layout.KeyWidth = 0.045
	}
	if layout.KeyHeight <= 0 {
		layout.KeyHeight = 0.12
	}

	script := tengo.NewScript(src)
	inputs := map[string]any{
		"octaves":        layout.Octaves,
		"base_frequency": layout.BaseFrequency,
		"key_width":      layout.KeyWidth,
		"key_height":     layout.KeyHeight,
		"gap":            layout.Gap,
	}
	for k, v := range inputs {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("prefabs: layout input %s: %w", k, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math", "text", "fmt"))

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("prefabs: run layout script: %w", err)
	}

	raw := compiled.Get("keys").Array()
	keys := make([]LayoutKey, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("prefabs: layout key %d is %T, want map", i, item)
		}
		key := LayoutKey{
			Name:      toString(m["name"]),
			Label:     toString(m["label"]),
			X:         toFloat(m["x"]),
			Y:         toFloat(m["y"]),
			Width:     toFloat(m["width"]),
			Height:    toFloat(m["height"]),
			Color:     toString(m["color"]),
			Frequency: toFloat(m["frequency"]),
		}
		if strings.TrimSpace(key.Name) == "" {
			return nil, fmt.Errorf("prefabs: layout key %d has no name", i)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
