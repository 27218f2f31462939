package system

import (
	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
	"github.com/sirupsen/logrus"
)

// ToneSystem turns hover events into key actions. Every listener resolves
// to Dispatch, keyed by the key index stored on the entity.
type ToneSystem struct {
	log logrus.FieldLogger
}

func NewToneSystem(logger logrus.FieldLogger) *ToneSystem {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ToneSystem{log: logger}
}

func (s *ToneSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var others []ecs.Event
	for _, evt := range w.Events().Drain() {
		var on component.InteractionEvent
		switch evt.Type {
		case ecs.EventHoverEnter:
			on = component.HoverEnter
		case ecs.EventHoverExit:
			on = component.HoverExit
		default:
			others = append(others, evt)
			continue
		}

		hover, ok := evt.Data.(ecs.HoverEvent)
		if !ok {
			continue
		}
		s.handle(w, hover.Entity, on)
	}

	for _, evt := range others {
		w.Events().Push(evt)
	}
}

func (s *ToneSystem) handle(w *ecs.World, e ecs.Entity, on component.InteractionEvent) {
	inter, ok := ecs.Get(w, e, component.InteractableComponent.Kind())
	if !ok {
		s.log.WithField("entity", e).Debugf("tone: %s on entity without interactable", on)
		return
	}
	key, ok := ecs.Get(w, e, component.KeyComponent.Kind())
	if !ok {
		s.log.WithField("entity", e).Debugf("tone: %s on entity without key", on)
		return
	}

	for _, action := range inter.Actions(on) {
		s.Dispatch(w, key.Index, action)
	}
}

// Dispatch runs action against the key bound at index.
func (s *ToneSystem) Dispatch(w *ecs.World, index int, action component.KeyAction) {
	switch action {
	case component.ActionPlay:
		s.Play(w, index)
	case component.ActionFadeOut:
		s.FadeOut(w, index)
	default:
		s.log.WithFields(logrus.Fields{"index": index, "action": action}).Warn("tone: unknown key action")
	}
}

// Play retriggers the key's clip from the start at full volume and presses
// its visual down. Fades already running on the key keep running unless the
// keyboard cancels them on press.
func (s *ToneSystem) Play(w *ecs.World, index int) {
	e, kb, ok := lookupKey(w, index)
	if !ok {
		s.log.WithField("index", index).Debug("tone: play on missing key")
		return
	}

	if kb.CancelFadeOnPress {
		s.cancelFades(w, e)
	}

	if emitter, ok := ecs.Get(w, e, component.AudioEmitterComponent.Kind()); ok && emitter.HasClip() {
		if err := emitter.Restart(); err != nil {
			s.log.WithFields(logrus.Fields{"index": index, "clip": emitter.Clip.Name}).WithError(err).Warn("tone: restart clip")
		}
	}

	translateVisual(w, e, -kb.PressDepth)
}

// FadeOut starts a linear fade from the emitter's current volume to silence.
func (s *ToneSystem) FadeOut(w *ecs.World, index int) {
	e, kb, ok := lookupKey(w, index)
	if !ok {
		s.log.WithField("index", index).Debug("tone: fade out on missing key")
		return
	}
	emitter, ok := ecs.Get(w, e, component.AudioEmitterComponent.Kind())
	if !ok {
		s.log.WithField("index", index).Debug("tone: fade out on key without emitter")
		return
	}

	fade, ok := ecs.Get(w, e, component.FadeOutComponent.Kind())
	if !ok {
		fade = &component.FadeOut{}
		if err := ecs.Add(w, e, component.FadeOutComponent.Kind(), fade); err != nil {
			s.log.WithField("index", index).WithError(err).Warn("tone: add fade out")
			return
		}
	}
	fade.Passes = append(fade.Passes, component.FadePass{
		Duration: kb.FadeDuration,
		From:     emitter.Volume,
		Release:  kb.PressDepth,
	})
}

func (s *ToneSystem) cancelFades(w *ecs.World, e ecs.Entity) {
	fade, ok := ecs.Get(w, e, component.FadeOutComponent.Kind())
	if !ok {
		return
	}
	for _, pass := range fade.Passes {
		translateVisual(w, e, pass.Release)
	}
	fade.Passes = fade.Passes[:0]
}

func lookupKey(w *ecs.World, index int) (ecs.Entity, *component.Keyboard, bool) {
	kbEnt, ok := ecs.First(w, component.KeyboardComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	kb, ok := ecs.Get(w, kbEnt, component.KeyboardComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	e := ecs.Entity(kb.Key(index))
	if !ecs.IsAlive(w, e) {
		return 0, nil, false
	}
	return e, kb, true
}

func translateVisual(w *ecs.World, key ecs.Entity, dy float64) bool {
	k, ok := ecs.Get(w, key, component.KeyComponent.Kind())
	if !ok || k.Visual == 0 {
		return false
	}
	t, ok := ecs.Get(w, ecs.Entity(k.Visual), component.TransformComponent.Kind())
	if !ok {
		return false
	}
	t.Translate(0, dy, 0)
	return true
}
