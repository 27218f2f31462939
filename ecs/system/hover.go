package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
)

// Pointer reports a screen-space pointer position; ok is false when no
// pointer is over the window.
type Pointer interface {
	Position() (x, y float64, ok bool)
}

// HoverSystem finds the interactable under the pointer and raises
// hover-exit / hover-enter events when it changes.
type HoverSystem struct {
	pointer Pointer
	hovered ecs.Entity
}

func NewHoverSystem(pointer Pointer) *HoverSystem {
	return &HoverSystem{pointer: pointer}
}

// Hovered returns the entity currently under the pointer, or 0.
func (h *HoverSystem) Hovered() ecs.Entity {
	if h == nil {
		return 0
	}
	return h.hovered
}

func (h *HoverSystem) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}

	target := h.pick(w)
	if target == h.hovered {
		return
	}

	if h.hovered.Valid() {
		if inter, ok := ecs.Get(w, h.hovered, component.InteractableComponent.Kind()); ok {
			inter.Hovered = false
		}
		w.Events().Push(ecs.Event{Type: ecs.EventHoverExit, Data: ecs.HoverEvent{Entity: h.hovered}})
	}
	if target.Valid() {
		if inter, ok := ecs.Get(w, target, component.InteractableComponent.Kind()); ok {
			inter.Hovered = true
		}
		w.Events().Push(ecs.Event{Type: ecs.EventHoverEnter, Data: ecs.HoverEvent{Entity: target}})
	}
	h.hovered = target
}

func (h *HoverSystem) pick(w *ecs.World) ecs.Entity {
	if h.pointer == nil {
		return 0
	}
	sx, sy, ok := h.pointer.Position()
	if !ok {
		return 0
	}

	kbEnt, ok := ecs.First(w, component.KeyboardComponent.Kind())
	if !ok {
		return 0
	}
	kb, ok := ecs.Get(w, kbEnt, component.KeyboardComponent.Kind())
	if !ok || kb.Space == nil {
		return 0
	}

	x, y := sx, sy
	if camEnt, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEnt, component.CameraComponent.Kind()); ok {
			x, y = cam.ScreenToWorld(sx, sy)
		}
	}

	info := kb.Space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return 0
	}
	raw, ok := info.Shape.UserData.(uint64)
	if !ok {
		return 0
	}
	e := ecs.Entity(raw)
	if !ecs.Has(w, e, component.InteractableComponent.Kind()) {
		return 0
	}
	return e
}
