package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
	"github.com/milk9111/keyboard/ecs/entity"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeVoice struct {
	playing bool
	volume  float64
	plays   int
	rewinds int
	volumes []float64
}

func (v *fakeVoice) Play()           { v.playing = true; v.plays++ }
func (v *fakeVoice) Pause()          { v.playing = false }
func (v *fakeVoice) Rewind() error   { v.rewinds++; return nil }
func (v *fakeVoice) IsPlaying() bool { return v.playing }
func (v *fakeVoice) Close() error     { return nil }
func (v *fakeVoice) SetVolume(vol float64) {
	v.volume = vol
	v.volumes = append(v.volumes, vol)
}

type fakePointer struct {
	x, y float64
	ok   bool
}

func (p *fakePointer) Position() (float64, float64, bool) { return p.x, p.y, p.ok }

type rig struct {
	w      *ecs.World
	kb     *component.Keyboard
	keys   []ecs.Entity
	voices map[string]*fakeVoice
	tone   *ToneSystem
}

// newRig binds n keys spaced 0.05 apart on x, each with a clip and a visual.
func newRig(t *testing.T, names []string, cancelOnPress bool) *rig {
	t.Helper()
	w := ecs.NewWorld()
	logger, _ := test.NewNullLogger()

	r := &rig{w: w, voices: map[string]*fakeVoice{}}
	clips := make([]*component.ToneClip, len(names))
	for i, name := range names {
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name})
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: float64(i) * 0.05})
		_ = ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Width: 0.04, Height: 0.1})
		r.keys = append(r.keys, e)
		clips[i] = &component.ToneClip{Name: name, PCM: []byte{0, 0, 0, 0}}
	}

	kb, err := entity.BindKeys(w, r.keys, clips, entity.BindOptions{
		Space:  cp.NewSpace(),
		Voices: func(clip *component.ToneClip) (component.Voice, error) {
			v := &fakeVoice{}
			r.voices[clip.Name] = v
			return v, nil
		},
		CancelFadeOnPress: cancelOnPress,
		Logger:            logger,
	})
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := entity.DuplicateVisuals(w, kb, logger); err != nil {
		t.Fatalf("visuals: %v", err)
	}
	r.kb = kb
	r.tone = NewToneSystem(logger)
	return r
}

func (r *rig) emitter(i int) *component.AudioEmitter {
	e, _ := ecs.Get(r.w, r.keys[i], component.AudioEmitterComponent.Kind())
	return e
}

func (r *rig) visualY(i int) float64 {
	key, _ := ecs.Get(r.w, r.keys[i], component.KeyComponent.Kind())
	tr, _ := ecs.Get(r.w, ecs.Entity(key.Visual), component.TransformComponent.Kind())
	return tr.Y
}

func near(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
