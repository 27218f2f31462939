package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
	"github.com/milk9111/keyboard/levels"
	"github.com/milk9111/keyboard/prefabs"
	"github.com/sirupsen/logrus"
)

var defaultKeyColor = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}

// BuildScene creates one entity per scene object and returns them by name.
func BuildScene(w *ecs.World, scene *levels.Scene, logger logrus.FieldLogger) (map[string]ecs.Entity, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	byName := make(map[string]ecs.Entity)
	if scene == nil {
		return byName, nil
	}

	for i, obj := range scene.Objects {
		e, err := NewSceneObject(w, obj, logger)
		if err != nil {
			return nil, fmt.Errorf("scene: object %d (%q): %w", i, obj.Name, err)
		}
		if obj.Name == "" {
			continue
		}
		if _, dup := byName[obj.Name]; dup {
			logger.WithField("name", obj.Name).Warn("scene: duplicate object name, the later one wins")
		}
		byName[obj.Name] = e
	}
	return byName, nil
}

// NewSceneObject creates the entity for one placed scene object.
func NewSceneObject(w *ecs.World, obj levels.Object, logger logrus.FieldLogger) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: obj.Name}); err != nil {
		return 0, fmt.Errorf("add name: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: obj.X, Y: obj.Y, Z: obj.Z}); err != nil {
		return 0, fmt.Errorf("add transform: %w", err)
	}

	if obj.Width > 0 && obj.Height > 0 {
		fill := defaultKeyColor
		if obj.Color != "" {
			parsed, err := prefabs.ParseHexColor(obj.Color)
			if err != nil {
				logger.WithField("name", obj.Name).WithError(err).Warn("scene: bad color, using default")
			} else {
				fill = parsed
			}
		}
		if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
			Width:  obj.Width,
			Height: obj.Height,
			Color:  fill,
			Label:  obj.Label,
		}); err != nil {
			return 0, fmt.Errorf("add appearance: %w", err)
		}
	}

	if obj.Collider {
		if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: obj.Width, Height: obj.Height}); err != nil {
			return 0, fmt.Errorf("add collider: %w", err)
		}
	}
	return e, nil
}
