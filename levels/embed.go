package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Scene is a set of objects placed in the world before any component
// binding happens.
type Scene struct {
	Name    string   `json:"name"`
	Objects []Object `json:"objects"`
}

// Object is one placed scene object. Positions and sizes are in world units.
type Object struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Color    string  `json:"color,omitempty"`
	Label    string  `json:"label,omitempty"`
	Collider bool    `json:"collider,omitempty"`
}

// LoadScene reads a scene by basename; a file under levels/ on disk wins
// over the embedded copy so scenes can be edited without rebuilding.
func LoadScene(name string) (*Scene, error) {
	clean := cleanScenePath(name)
	data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean)))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
		if err != nil {
			return nil, fmt.Errorf("read scene: %w", err)
		}
	}
	return ParseScene(data)
}

// ParseScene decodes a scene from JSON.
func ParseScene(data []byte) (*Scene, error) {
	var scene Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("unmarshal scene: %w", err)
	}
	return &scene, nil
}

func cleanScenePath(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "levels/")
	if s != "" && !strings.HasSuffix(strings.ToLower(s), ".json") {
		s += ".json"
	}
	return s
}
