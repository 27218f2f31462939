package entity

import (
	"context"
	"errors"
	"testing"

	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
	"github.com/milk9111/keyboard/levels"
	"github.com/milk9111/keyboard/prefabs"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func fakeClips(path string) (*component.ToneClip, error) {
	return &component.ToneClip{Name: path, Source: path, PCM: []byte{0, 0, 0, 0}}, nil
}

func TestBuildKeyboardFromPrefab(t *testing.T) {
	spec, err := prefabs.LoadKeyboardSpec("keyboard.yaml")
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	w := ecs.NewWorld()
	logger, hook := test.NewNullLogger()

	kb, err := BuildKeyboard(context.Background(), w, spec, KeyboardOptions{
		Clips:  fakeClips,
		Voices: fakeVoices,
		Logger: logger,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(kb.Keys) != len(spec.Keys) {
		t.Fatalf("expected %d keys, got %d", len(spec.Keys), len(kb.Keys))
	}
	if countShapes(kb.Space) != len(spec.Keys) {
		t.Fatalf("expected one shape per key, got %d", countShapes(kb.Space))
	}
	for i, raw := range kb.Keys {
		e := ecs.Entity(raw)
		if !ecs.IsAlive(w, e) {
			t.Fatalf("key %d not bound", i)
		}
		emitter, _ := ecs.Get(w, e, component.AudioEmitterComponent.Kind())
		if !emitter.HasClip() {
			t.Fatalf("key %d has no clip", i)
		}
		key, _ := ecs.Get(w, e, component.KeyComponent.Kind())
		if key.Name != spec.Keys[i] {
			t.Fatalf("key %d is %q, want %q", i, key.Name, spec.Keys[i])
		}
		if key.Visual == 0 {
			t.Fatalf("key %d has no visual", i)
		}
	}

	last, _ := ecs.Get(w, ecs.Entity(kb.Keys[len(kb.Keys)-1]), component.AudioEmitterComponent.Kind())
	if last.Clip.Source != "clips/c5.wav" {
		t.Fatalf("last key should use the file clip, got %q", last.Clip.Source)
	}
	first, _ := ecs.Get(w, ecs.Entity(kb.Keys[0]), component.AudioEmitterComponent.Kind())
	if len(first.Clip.PCM) == 0 {
		t.Fatalf("synthesized clip is empty")
	}

	if _, ok := ecs.First(w, component.CameraComponent.Kind()); !ok {
		t.Fatalf("camera not created")
	}
	if got := countLevel(hook, logrus.WarnLevel) + countLevel(hook, logrus.ErrorLevel); got != 0 {
		t.Fatalf("expected a clean build, got %d warnings/errors", got)
	}
}

func TestBuildKeyboardFromLayoutScript(t *testing.T) {
	spec, err := prefabs.LoadKeyboardSpec("keyboard_scripted.yaml")
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	layout, err := prefabs.RunLayoutScript(context.Background(), spec.LayoutScript, spec.Layout)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	w := ecs.NewWorld()
	logger, _ := test.NewNullLogger()
	kb, err := BuildKeyboard(context.Background(), w, spec, KeyboardOptions{Voices: fakeVoices, Logger: logger})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(kb.Keys) != len(layout) {
		t.Fatalf("expected %d keys, got %d", len(layout), len(kb.Keys))
	}
	for i, raw := range kb.Keys {
		emitter, ok := ecs.Get(w, ecs.Entity(raw), component.AudioEmitterComponent.Kind())
		if !ok {
			t.Fatalf("key %d has no emitter", i)
		}
		if layout[i].Frequency > 0 && !emitter.HasClip() {
			t.Fatalf("key %d should have a synthesized clip", i)
		}
	}
}

func TestBuildKeyboardSceneOverride(t *testing.T) {
	spec, err := prefabs.ParseKeyboardSpec([]byte(`
keys: [A, Missing, ""]
tones:
  - { name: a, frequency: 440 }
  - { name: b, frequency: 494 }
  - ~
visuals: false
`))
	if err != nil {
		t.Fatal(err)
	}
	scene := &levels.Scene{Objects: []levels.Object{
		{Type: "key", Name: "A", Width: 0.04, Height: 0.1},
	}}

	w := ecs.NewWorld()
	logger, hook := test.NewNullLogger()
	kb, err := BuildKeyboard(context.Background(), w, spec, KeyboardOptions{Voices: fakeVoices, Logger: logger, Scene: scene})
	if err != nil {
		t.Fatal(err)
	}
	if kb.Keys[0] == 0 || kb.Keys[1] != 0 || kb.Keys[2] != 0 {
		t.Fatalf("unexpected bindings %v", kb.Keys)
	}
	key, _ := ecs.Get(w, ecs.Entity(kb.Keys[0]), component.KeyComponent.Kind())
	if key.Visual != 0 {
		t.Fatalf("visuals are disabled")
	}

	var notFound int
	for _, entry := range hook.AllEntries() {
		if entry.Message == "keyboard: key not found in scene" {
			notFound++
		}
	}
	if notFound != 1 {
		t.Fatalf("expected one not-found warning, got %d", notFound)
	}
}

func TestBuildKeyboardLengthMismatch(t *testing.T) {
	spec, err := prefabs.ParseKeyboardSpec([]byte(`
keys: [A, B]
tones:
  - { frequency: 440 }
`))
	if err != nil {
		t.Fatal(err)
	}
	scene := &levels.Scene{Objects: []levels.Object{
		{Name: "A", Width: 0.04, Height: 0.1},
		{Name: "B", X: 0.05, Width: 0.04, Height: 0.1},
	}}
	w := ecs.NewWorld()
	logger, _ := test.NewNullLogger()

	_, err = BuildKeyboard(context.Background(), w, spec, KeyboardOptions{Voices: fakeVoices, Logger: logger, Scene: scene})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if n := len(w.Query(component.NameComponent.Kind())); n != 2 {
		t.Fatalf("scene should still be built, got %d named entities", n)
	}
}

func TestReleaseVoices(t *testing.T) {
	w := ecs.NewWorld()
	logger, _ := test.NewNullLogger()
	keys := []ecs.Entity{newKey(w, "A", 0), newKey(w, "B", 0.05)}
	kb, err := BindKeys(w, keys, []*component.ToneClip{clip("a"), clip("b")}, BindOptions{Voices: fakeVoices, Logger: logger})
	if err != nil {
		t.Fatal(err)
	}

	var voices []*fakeVoice
	for _, raw := range kb.Keys {
		emitter, _ := ecs.Get(w, ecs.Entity(raw), component.AudioEmitterComponent.Kind())
		v := emitter.Voice.(*fakeVoice)
		v.Play()
		voices = append(voices, v)
	}

	ReleaseVoices(w, logger)

	for i, v := range voices {
		if !v.closed || v.playing {
			t.Fatalf("voice %d should be stopped and closed, got %+v", i, v)
		}
		emitter, _ := ecs.Get(w, keys[i], component.AudioEmitterComponent.Kind())
		if emitter.HasClip() {
			t.Fatalf("emitter %d should be silent after release", i)
		}
	}
}
