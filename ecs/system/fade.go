package system

import (
	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
)

// FadeSystem advances every fade pass by the tick's wall-clock delta.
type FadeSystem struct{}

func NewFadeSystem() *FadeSystem {
	return &FadeSystem{}
}

func (f *FadeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.FadeOutComponent.Kind(), func(e ecs.Entity, fade *component.FadeOut) {
		if len(fade.Passes) == 0 {
			return
		}
		emitter, ok := ecs.Get(w, e, component.AudioEmitterComponent.Kind())
		if !ok {
			for _, pass := range fade.Passes {
				translateVisual(w, e, pass.Release)
			}
			fade.Passes = nil
			return
		}

		remaining := fade.Passes[:0]
		for _, pass := range fade.Passes {
			pass.Elapsed += dt
			if !pass.Done() {
				emitter.SetVolume(pass.Volume())
				remaining = append(remaining, pass)
				continue
			}

			emitter.SetVolume(0)
			emitter.Stop()
			emitter.SetVolume(1)
			translateVisual(w, e, pass.Release)
		}
		fade.Passes = remaining
	})
}
