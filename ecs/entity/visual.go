package entity

import (
	"fmt"

	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
	"github.com/sirupsen/logrus"
)

// DuplicateVisuals clones each bound key's appearance into a child entity
// and strips it from the key, so the key keeps only its collider and the
// clone can move for the press effect. Keys that already own a live visual
// are left alone.
func DuplicateVisuals(w *ecs.World, kb *component.Keyboard, logger logrus.FieldLogger) error {
	if w == nil || kb == nil {
		return nil
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	for i, raw := range kb.Keys {
		e := ecs.Entity(raw)
		if !ecs.IsAlive(w, e) {
			continue
		}
		key, ok := ecs.Get(w, e, component.KeyComponent.Kind())
		if !ok {
			continue
		}
		if key.Visual != 0 && ecs.IsAlive(w, ecs.Entity(key.Visual)) {
			continue
		}

		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			logger.WithField("key", key.Name).Warn("keyboard: key has no transform, no visual created")
			continue
		}
		app, ok := ecs.Get(w, e, component.AppearanceComponent.Kind())
		if !ok {
			logger.WithField("key", key.Name).Debug("keyboard: key has nothing to render, no visual created")
			continue
		}

		visual, err := newVisual(w, e, key.Name, *t, *app)
		if err != nil {
			return fmt.Errorf("keyboard: visual for key %d: %w", i, err)
		}
		ecs.Remove(w, e, component.AppearanceComponent.Kind())
		key.Visual = uint64(visual)
		logger.WithFields(logrus.Fields{"key": key.Name, "visual": visual}).Debug("keyboard: visual created")
	}
	return nil
}

func newVisual(w *ecs.World, parent ecs.Entity, name string, t component.Transform, app component.Appearance) (ecs.Entity, error) {
	visual := ecs.CreateEntity(w)
	if err := ecs.Add(w, visual, component.NameComponent.Kind(), &component.Name{Value: name + "/Visual"}); err != nil {
		return 0, fmt.Errorf("add name: %w", err)
	}
	if err := ecs.Add(w, visual, component.TransformComponent.Kind(), &t); err != nil {
		return 0, fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, visual, component.AppearanceComponent.Kind(), &app); err != nil {
		return 0, fmt.Errorf("add appearance: %w", err)
	}
	if err := ecs.Add(w, visual, component.VisualComponent.Kind(), &component.Visual{Parent: uint64(parent)}); err != nil {
		return 0, fmt.Errorf("add visual: %w", err)
	}
	return visual, nil
}
