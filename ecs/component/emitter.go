package component

import "github.com/milk9111/keyboard/common"

// Voice is the playback handle behind an emitter. *audio.Player from
// ebiten satisfies it.
type Voice interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// AudioEmitter plays one clip. Voice is nil when no clip is assigned.
type AudioEmitter struct {
	Clip        *ToneClip
	Voice       Voice
	PlayOnAwake bool
	Volume      float64
}

// HasClip reports whether the emitter can make a sound.
func (a *AudioEmitter) HasClip() bool {
	return a != nil && a.Clip != nil && a.Voice != nil
}

// SetVolume records the volume and forwards it to the voice.
func (a *AudioEmitter) SetVolume(v float64) {
	if a == nil {
		return
	}
	v = common.Clamp(v, 0, 1)
	a.Volume = v
	if a.Voice != nil {
		a.Voice.SetVolume(v)
	}
}

// Restart plays the clip from the beginning at full volume, cutting off
// whatever the voice was playing.
func (a *AudioEmitter) Restart() error {
	if !a.HasClip() {
		return nil
	}
	if a.Voice.IsPlaying() {
		a.Voice.Pause()
	}
	if err := a.Voice.Rewind(); err != nil {
		return err
	}
	a.SetVolume(1)
	a.Voice.Play()
	return nil
}

// Stop halts playback without touching the recorded volume.
func (a *AudioEmitter) Stop() {
	if a == nil || a.Voice == nil {
		return
	}
	if a.Voice.IsPlaying() {
		a.Voice.Pause()
	}
}

// Close stops the voice and releases it. The emitter is silent afterwards.
func (a *AudioEmitter) Close() error {
	if a == nil || a.Voice == nil {
		return nil
	}
	a.Stop()
	err := a.Voice.Close()
	a.Voice = nil
	return err
}

var AudioEmitterComponent = NewComponent[AudioEmitter]()
