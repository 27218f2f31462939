package prefabs

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultFadeDuration  = 0.5
	defaultPressDepth    = 0.01
	defaultPixelsPerUnit = 2000
	defaultScreenWidth   = 1280
	defaultScreenHeight  = 720
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// KeyboardSpec configures one keyboard. Keys and Tones are parallel: Keys
// names scene objects (empty for none), Tones holds the clip for each key
// (null for none).
type KeyboardSpec struct {
	Name              string       `yaml:"name"`
	Scene             string       `yaml:"scene"`
	LayoutScript      string       `yaml:"layout_script"`
	Layout            LayoutSpec   `yaml:"layout"`
	Keys              []string     `yaml:"keys"`
	Tones             []*ToneSpec  `yaml:"tones"`
	FadeDuration      float64      `yaml:"fade_duration"`
	PressDepth        float64      `yaml:"press_depth"`
	Visuals           *bool        `yaml:"visuals"`
	CancelFadeOnPress bool         `yaml:"cancel_fade_on_press"`
	Camera            CameraSpec   `yaml:"camera"`
	Colors            KeyColorSpec `yaml:"colors"`
}

// ToneSpec names a clip by embedded file or by a frequency to synthesize.
type ToneSpec struct {
	Name      string  `yaml:"name"`
	File      string  `yaml:"file"`
	Frequency float64 `yaml:"frequency"`
	Seconds   float64 `yaml:"seconds"`
}

// LayoutSpec are the inputs handed to a layout script.
type LayoutSpec struct {
	Octaves       int     `yaml:"octaves"`
	BaseFrequency float64 `yaml:"base_frequency"`
	KeyWidth      float64 `yaml:"key_width"`
	KeyHeight     float64 `yaml:"key_height"`
	Gap           float64 `yaml:"gap"`
}

type CameraSpec struct {
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	ScreenWidth   int     `yaml:"screen_width"`
	ScreenHeight  int     `yaml:"screen_height"`
}

type KeyColorSpec struct {
	Hover      *YAMLColor `yaml:"hover"`
	Background *YAMLColor `yaml:"background"`
	Label      *YAMLColor `yaml:"label"`
}

// LoadKeyboardSpec loads a keyboard prefab and fills unset fields with
// defaults.
func LoadKeyboardSpec(name string) (*KeyboardSpec, error) {
	if strings.TrimSpace(name) == "" {
		name = "keyboard.yaml"
	}
	if filepath.Ext(name) == "" {
		name += ".yaml"
	}
	spec, err := LoadSpec[KeyboardSpec](name)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

// ParseKeyboardSpec decodes a keyboard prefab from YAML bytes.
func ParseKeyboardSpec(data []byte) (*KeyboardSpec, error) {
	var spec KeyboardSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal keyboard: %w", err)
	}
	spec.applyDefaults()
	return &spec, nil
}

func (s *KeyboardSpec) applyDefaults() {
	if s.FadeDuration <= 0 {
		s.FadeDuration = defaultFadeDuration
	}
	if s.PressDepth <= 0 {
		s.PressDepth = defaultPressDepth
	}
	if s.Visuals == nil {
		visuals := true
		s.Visuals = &visuals
	}
	if s.Camera.PixelsPerUnit <= 0 {
		s.Camera.PixelsPerUnit = defaultPixelsPerUnit
	}
	if s.Camera.ScreenWidth <= 0 {
		s.Camera.ScreenWidth = defaultScreenWidth
	}
	if s.Camera.ScreenHeight <= 0 {
		s.Camera.ScreenHeight = defaultScreenHeight
	}
}

// VisualsEnabled reports whether keys get a rendered clone.
func (s *KeyboardSpec) VisualsEnabled() bool {
	return s != nil && s.Visuals != nil && *s.Visuals
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// RGBA8 returns the color, or fallback when unset.
func (c *YAMLColor) RGBA8(fallback color.RGBA) color.RGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	r, g, b, a := c.Color.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(value string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(value), "#")

	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.RGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.RGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.RGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.RGBA{}, err
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
