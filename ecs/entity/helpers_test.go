package entity

import (
	"errors"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeVoice struct {
	playing bool
	volume  float64
	plays   int
	closed  bool
}

func (v *fakeVoice) Play()                 { v.playing = true; v.plays++ }
func (v *fakeVoice) Pause()                { v.playing = false }
func (v *fakeVoice) Rewind() error         { return nil }
func (v *fakeVoice) IsPlaying() bool       { return v.playing }
func (v *fakeVoice) SetVolume(vol float64) { v.volume = vol }
func (v *fakeVoice) Close() error          { v.closed = true; return nil }

func fakeVoices(clip *component.ToneClip) (component.Voice, error) {
	return &fakeVoice{}, nil
}

func failingVoices(clip *component.ToneClip) (component.Voice, error) {
	return nil, errors.New("no audio device")
}

func newKey(w *ecs.World, name string, x float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x})
	_ = ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Width: 0.04, Height: 0.1, Label: name})
	return e
}

func clip(name string) *component.ToneClip {
	return &component.ToneClip{Name: name, PCM: []byte{0, 0, 0, 0}}
}

func countShapes(space *cp.Space) int {
	n := 0
	space.EachShape(func(*cp.Shape) { n++ })
	return n
}

func countLevel(hook *test.Hook, level logrus.Level) int {
	n := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == level {
			n++
		}
	}
	return n
}

func hasAnyCapability(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.ColliderComponent.Kind()) ||
		ecs.Has(w, e, component.AudioEmitterComponent.Kind()) ||
		ecs.Has(w, e, component.InteractableComponent.Kind()) ||
		ecs.Has(w, e, component.KeyComponent.Kind())
}
