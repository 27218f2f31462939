package entity

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
	"github.com/sirupsen/logrus"
)

const (
	defaultKeyWidth  = 0.045
	defaultKeyHeight = 0.12
)

// ErrLengthMismatch is returned when the key and tone sequences differ in
// length. Nothing is bound in that case.
var ErrLengthMismatch = errors.New("keyboard: number of keys and tone clips do not match")

// VoiceFactory creates a playback handle for a clip.
type VoiceFactory func(clip *component.ToneClip) (component.Voice, error)

type BindOptions struct {
	Space             *cp.Space
	Voices            VoiceFactory
	FadeDuration      float64
	PressDepth        float64
	CancelFadeOnPress bool
	Logger            logrus.FieldLogger
}

func (o BindOptions) logger() logrus.FieldLogger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}

// BindKeys gives every key a collider, an emitter for the tone at the same
// index and an interactable wired to play on hover-enter and fade out on
// hover-exit. Components already present are kept, so binding twice is
// harmless. The sequences must be the same length or nothing is bound.
func BindKeys(w *ecs.World, keys []ecs.Entity, clips []*component.ToneClip, opts BindOptions) (*component.Keyboard, error) {
	log := opts.logger()

	if len(keys) == 0 {
		log.Warn("keyboard: no keys assigned to add components")
		return nil, nil
	}
	if len(keys) != len(clips) {
		log.WithFields(logrus.Fields{
			"keys":  len(keys),
			"clips": len(clips),
		}).Error("keyboard: the number of keys and tone clips do not match, make sure they are the same length")
		return nil, fmt.Errorf("%w: %d keys, %d clips", ErrLengthMismatch, len(keys), len(clips))
	}

	space := opts.Space
	if space == nil {
		space = existingSpace(w)
	}
	fade := opts.FadeDuration
	if fade <= 0 {
		fade = component.DefaultFadeDuration
	}
	depth := opts.PressDepth
	if depth <= 0 {
		depth = component.DefaultPressDepth
	}

	kb := &component.Keyboard{
		Keys:              make([]uint64, len(keys)),
		FadeDuration:      fade,
		PressDepth:        depth,
		CancelFadeOnPress: opts.CancelFadeOnPress,
		Space:             space,
	}

	seen := make(map[ecs.Entity]int, len(keys))
	for i, e := range keys {
		if !e.Valid() {
			log.WithField("index", i).Warn("keyboard: no key assigned, skipping")
			continue
		}
		if !ecs.IsAlive(w, e) {
			log.WithFields(logrus.Fields{"index": i, "entity": e}).Warn("keyboard: key no longer exists, skipping")
			continue
		}
		if first, dup := seen[e]; dup {
			log.WithFields(logrus.Fields{"index": i, "first": first, "entity": e}).Warn("keyboard: key already bound at another index, skipping")
			continue
		}
		seen[e] = i

		name := keyName(w, e, i)
		klog := log.WithFields(logrus.Fields{"key": name, "index": i})
		if err := bindKey(w, e, i, name, clips[i], space, opts.Voices, klog); err != nil {
			klog.WithError(err).Warn("keyboard: bind key")
			continue
		}
		kb.Keys[i] = uint64(e)
	}

	if err := storeKeyboard(w, kb); err != nil {
		return nil, fmt.Errorf("keyboard: store keyboard: %w", err)
	}
	return kb, nil
}

func bindKey(w *ecs.World, e ecs.Entity, index int, name string, clip *component.ToneClip, space *cp.Space, voices VoiceFactory, log logrus.FieldLogger) error {
	if err := ensureCollider(w, e, name, space, log); err != nil {
		return fmt.Errorf("collider: %w", err)
	}
	if err := ensureEmitter(w, e, name, clip, voices, log); err != nil {
		return fmt.Errorf("emitter: %w", err)
	}
	if err := ensureInteractable(w, e, name, log); err != nil {
		return fmt.Errorf("interactable: %w", err)
	}

	key, ok := ecs.Get(w, e, component.KeyComponent.Kind())
	if !ok {
		key = &component.Key{}
		if err := ecs.Add(w, e, component.KeyComponent.Kind(), key); err != nil {
			return fmt.Errorf("key: %w", err)
		}
	}
	key.Index = index
	key.Name = name
	return nil
}

func ensureCollider(w *ecs.World, e ecs.Entity, name string, space *cp.Space, log logrus.FieldLogger) error {
	if c, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		// A collider placed with the scene still needs a shape in this space.
		if c.Shape == nil {
			c.Shape = addKeyShape(w, e, space, c.Width, c.Height)
		}
		return nil
	}

	width, height := defaultKeyWidth, defaultKeyHeight
	if app, ok := ecs.Get(w, e, component.AppearanceComponent.Kind()); ok && app.Width > 0 && app.Height > 0 {
		width, height = app.Width, app.Height
	}
	c := &component.Collider{Width: width, Height: height}
	c.Shape = addKeyShape(w, e, space, width, height)
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), c); err != nil {
		space.RemoveShape(c.Shape)
		return err
	}
	log.Infof("keyboard: collider added to %s", name)
	return nil
}

func addKeyShape(w *ecs.World, e ecs.Entity, space *cp.Space, width, height float64) *cp.Shape {
	if width <= 0 {
		width = defaultKeyWidth
	}
	if height <= 0 {
		height = defaultKeyHeight
	}
	x, y := 0.0, 0.0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}
	bb := cp.BB{L: x - width/2, B: y - height/2, R: x + width/2, T: y + height/2}
	shape := cp.NewBox2(space.StaticBody, bb, 0)
	shape.UserData = uint64(e)
	space.AddShape(shape)
	return shape
}

func ensureEmitter(w *ecs.World, e ecs.Entity, name string, clip *component.ToneClip, voices VoiceFactory, log logrus.FieldLogger) error {
	if ecs.Has(w, e, component.AudioEmitterComponent.Kind()) {
		log.Infof("keyboard: emitter already exists on %s", name)
		return nil
	}

	emitter := &component.AudioEmitter{PlayOnAwake: false, Volume: 1}
	switch {
	case clip == nil:
		log.Warnf("keyboard: no tone clip assigned for %s, no sound will play", name)
	case voices == nil:
		log.WithField("clip", clip.Name).Warnf("keyboard: no voice factory, %s will be silent", name)
	default:
		voice, err := voices(clip)
		if err != nil {
			log.WithField("clip", clip.Name).WithError(err).Warnf("keyboard: could not create voice, %s will be silent", name)
			break
		}
		voice.SetVolume(1)
		emitter.Clip = clip
		emitter.Voice = voice
		log.WithField("clip", clip.Name).Infof("keyboard: emitter added to %s with clip %s", name, clip.Name)
	}

	return ecs.Add(w, e, component.AudioEmitterComponent.Kind(), emitter)
}

func ensureInteractable(w *ecs.World, e ecs.Entity, name string, log logrus.FieldLogger) error {
	inter, ok := ecs.Get(w, e, component.InteractableComponent.Kind())
	if !ok {
		inter = &component.Interactable{}
		if err := ecs.Add(w, e, component.InteractableComponent.Kind(), inter); err != nil {
			return err
		}
		log.Infof("keyboard: interactable added to %s", name)
	}
	inter.Listen(component.HoverEnter, component.ActionPlay)
	inter.Listen(component.HoverExit, component.ActionFadeOut)
	return nil
}

func storeKeyboard(w *ecs.World, kb *component.Keyboard) error {
	if e, ok := ecs.First(w, component.KeyboardComponent.Kind()); ok {
		return ecs.Add(w, e, component.KeyboardComponent.Kind(), kb)
	}
	return ecs.Add(w, ecs.CreateEntity(w), component.KeyboardComponent.Kind(), kb)
}

// existingSpace reuses the space of a previous binding so rebinding never
// strands colliders in a space nobody queries.
func existingSpace(w *ecs.World) *cp.Space {
	if e, ok := ecs.First(w, component.KeyboardComponent.Kind()); ok {
		if kb, ok := ecs.Get(w, e, component.KeyboardComponent.Kind()); ok && kb.Space != nil {
			return kb.Space
		}
	}
	return cp.NewSpace()
}

func keyName(w *ecs.World, e ecs.Entity, index int) string {
	if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok && n.Value != "" {
		return n.Value
	}
	return fmt.Sprintf("key %d", index)
}
