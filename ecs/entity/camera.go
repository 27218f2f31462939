package entity

import (
	"fmt"

	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
	"github.com/milk9111/keyboard/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		X:             spec.X,
		Y:             spec.Y,
		PixelsPerUnit: spec.PixelsPerUnit,
		ScreenWidth:   float64(spec.ScreenWidth),
		ScreenHeight:  float64(spec.ScreenHeight),
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
