package entity

import (
	"context"
	"fmt"
	"strings"

	"github.com/milk9111/keyboard/assets/tones"
	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
	"github.com/milk9111/keyboard/levels"
	"github.com/milk9111/keyboard/prefabs"
	"github.com/sirupsen/logrus"
)

const defaultToneSeconds = 1.5

// ClipLoader loads a clip from an asset path.
type ClipLoader func(path string) (*component.ToneClip, error)

type KeyboardOptions struct {
	Clips  ClipLoader
	Voices VoiceFactory
	Logger logrus.FieldLogger
	// Scene overrides the scene named by the prefab.
	Scene *levels.Scene
}

// BuildKeyboard sets up a full keyboard from its prefab: camera, scene
// objects, tone clips, binding and visuals. A binding error is returned
// after the scene is built, so the rest of the world stays usable.
func BuildKeyboard(ctx context.Context, w *ecs.World, spec *prefabs.KeyboardSpec, opts KeyboardOptions) (*component.Keyboard, error) {
	if spec == nil {
		return nil, fmt.Errorf("keyboard: nil spec")
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	if _, err := NewCamera(w, spec.Camera); err != nil {
		return nil, err
	}

	scene, keyNames, toneSpecs, err := resolveLayout(ctx, spec, opts.Scene)
	if err != nil {
		return nil, err
	}
	byName, err := BuildScene(w, scene, log)
	if err != nil {
		return nil, err
	}

	keys := make([]ecs.Entity, len(keyNames))
	for i, name := range keyNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		e, ok := byName[name]
		if !ok {
			log.WithFields(logrus.Fields{"index": i, "key": name}).Warn("keyboard: key not found in scene")
			continue
		}
		keys[i] = e
	}

	clips := make([]*component.ToneClip, len(toneSpecs))
	for i, ts := range toneSpecs {
		clips[i] = loadTone(ts, opts.Clips, log.WithField("index", i))
	}

	kb, err := BindKeys(w, keys, clips, BindOptions{
		Voices:            opts.Voices,
		FadeDuration:      spec.FadeDuration,
		PressDepth:        spec.PressDepth,
		CancelFadeOnPress: spec.CancelFadeOnPress,
		Logger:            log,
	})
	if err != nil || kb == nil {
		return kb, err
	}

	if spec.VisualsEnabled() {
		if err := DuplicateVisuals(w, kb, log); err != nil {
			return nil, err
		}
	}
	return kb, nil
}

func resolveLayout(ctx context.Context, spec *prefabs.KeyboardSpec, override *levels.Scene) (*levels.Scene, []string, []*prefabs.ToneSpec, error) {
	if spec.LayoutScript == "" {
		scene := override
		if scene == nil {
			loaded, err := levels.LoadScene(spec.Scene)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("keyboard: load scene %q: %w", spec.Scene, err)
			}
			scene = loaded
		}
		return scene, spec.Keys, spec.Tones, nil
	}

	layout, err := prefabs.RunLayoutScript(ctx, spec.LayoutScript, spec.Layout)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("keyboard: layout: %w", err)
	}
	scene := &levels.Scene{Name: spec.Name}
	if override != nil {
		scene.Objects = append(scene.Objects, override.Objects...)
	}
	names := make([]string, 0, len(layout))
	toneSpecs := make([]*prefabs.ToneSpec, 0, len(layout))
	for _, k := range layout {
		scene.Objects = append(scene.Objects, levels.Object{
			Type:   "key",
			Name:   k.Name,
			X:      k.X,
			Y:      k.Y,
			Width:  k.Width,
			Height: k.Height,
			Color:  k.Color,
			Label:  k.Label,
		})
		names = append(names, k.Name)
		var ts *prefabs.ToneSpec
		if k.Frequency > 0 {
			ts = &prefabs.ToneSpec{Name: strings.ToLower(k.Name), Frequency: k.Frequency}
		}
		toneSpecs = append(toneSpecs, ts)
	}
	return scene, names, toneSpecs, nil
}

func loadTone(ts *prefabs.ToneSpec, loader ClipLoader, log logrus.FieldLogger) *component.ToneClip {
	if ts == nil {
		return nil
	}

	if ts.File != "" {
		if loader == nil {
			log.WithField("file", ts.File).Warn("keyboard: no clip loader, tone skipped")
			return nil
		}
		clip, err := loader(ts.File)
		if err != nil {
			log.WithField("file", ts.File).WithError(err).Warn("keyboard: load tone clip")
			return nil
		}
		if ts.Name != "" {
			clip.Name = ts.Name
		}
		return clip
	}

	if ts.Frequency > 0 {
		seconds := ts.Seconds
		if seconds <= 0 {
			seconds = defaultToneSeconds
		}
		name := ts.Name
		if name == "" {
			name = fmt.Sprintf("%.2fHz", ts.Frequency)
		}
		return &component.ToneClip{
			Name:   name,
			Source: fmt.Sprintf("synth:%.2f", ts.Frequency),
			PCM:    tones.Synthesize(ts.Frequency, seconds, tones.SampleRate),
		}
	}

	log.WithField("tone", ts.Name).Warn("keyboard: tone has neither file nor frequency")
	return nil
}

// ReleaseVoices closes every emitter's voice in w. Call it before dropping
// a world so its players do not outlive it.
func ReleaseVoices(w *ecs.World, logger logrus.FieldLogger) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	ecs.ForEach(w, component.AudioEmitterComponent.Kind(), func(e ecs.Entity, emitter *component.AudioEmitter) {
		if err := emitter.Close(); err != nil {
			logger.WithField("entity", e).WithError(err).Warn("keyboard: close voice")
		}
	})
}
