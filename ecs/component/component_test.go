package component

import (
	"math"
	"testing"
)

type stubVoice struct {
	playing bool
	volume  float64
	rewound bool
	closed  bool
}

func (v *stubVoice) Play()                 { v.playing = true }
func (v *stubVoice) Pause()                { v.playing = false }
func (v *stubVoice) Rewind() error         { v.rewound = true; return nil }
func (v *stubVoice) IsPlaying() bool       { return v.playing }
func (v *stubVoice) SetVolume(vol float64) { v.volume = vol }
func (v *stubVoice) Close() error          { v.closed = true; return nil }

func TestFadePassVolume(t *testing.T) {
	tests := []struct {
		name   string
		pass   FadePass
		volume float64
		done   bool
	}{
		{name: "start", pass: FadePass{Duration: 0.5, From: 1}, volume: 1},
		{name: "half", pass: FadePass{Elapsed: 0.25, Duration: 0.5, From: 1}, volume: 0.5},
		{name: "from lower volume", pass: FadePass{Elapsed: 0.25, Duration: 0.5, From: 0.6}, volume: 0.3},
		{name: "complete", pass: FadePass{Elapsed: 0.5, Duration: 0.5, From: 1}, volume: 0, done: true},
		{name: "overshoot", pass: FadePass{Elapsed: 3, Duration: 0.5, From: 1}, volume: 0, done: true},
		{name: "zero duration", pass: FadePass{From: 1}, volume: 0, done: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pass.Volume(); math.Abs(got-tc.volume) > 1e-9 {
				t.Fatalf("volume %v, want %v", got, tc.volume)
			}
			if got := tc.pass.Done(); got != tc.done {
				t.Fatalf("done %v, want %v", got, tc.done)
			}
		})
	}
}

func TestEmitterRestart(t *testing.T) {
	v := &stubVoice{playing: true, volume: 0.2}
	e := &AudioEmitter{Clip: &ToneClip{Name: "c4"}, Voice: v, Volume: 0.2}

	if err := e.Restart(); err != nil {
		t.Fatal(err)
	}
	if !v.rewound || !v.playing || v.volume != 1 || e.Volume != 1 {
		t.Fatalf("restart should rewind and play at full volume, got %+v", v)
	}

	e.SetVolume(2)
	if e.Volume != 1 {
		t.Fatalf("volume should clamp to 1, got %v", e.Volume)
	}
	e.Stop()
	if v.playing {
		t.Fatalf("stop should pause the voice")
	}
}

func TestEmitterClose(t *testing.T) {
	v := &stubVoice{playing: true}
	e := &AudioEmitter{Clip: &ToneClip{Name: "c4"}, Voice: v, Volume: 1}

	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if !v.closed || v.playing {
		t.Fatalf("voice should be stopped and closed, got %+v", v)
	}
	if e.HasClip() {
		t.Fatalf("closed emitter should be silent")
	}
	if err := e.Close(); err != nil {
		t.Fatalf("closing twice: %v", err)
	}
}

func TestSilentEmitter(t *testing.T) {
	e := &AudioEmitter{Volume: 1}
	if e.HasClip() {
		t.Fatalf("emitter without clip should be silent")
	}
	if err := e.Restart(); err != nil {
		t.Fatalf("restart on a silent emitter: %v", err)
	}
	e.Stop()
}

func TestInteractableListenIsIdempotent(t *testing.T) {
	var i Interactable
	i.Listen(HoverEnter, ActionPlay)
	i.Listen(HoverExit, ActionFadeOut)
	i.Listen(HoverEnter, ActionPlay)

	if len(i.Listeners) != 2 {
		t.Fatalf("expected 2 listeners, got %d", len(i.Listeners))
	}
	if got := i.Actions(HoverExit); len(got) != 1 || got[0] != ActionFadeOut {
		t.Fatalf("unexpected exit actions %v", got)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := &Camera{X: 0.1, Y: -0.2, PixelsPerUnit: 2400, ScreenWidth: 1280, ScreenHeight: 720}
	sx, sy := c.WorldToScreen(0.15, -0.1)
	if sy >= 360 {
		t.Fatalf("world up should be screen up, got sy=%v", sy)
	}
	x, y := c.ScreenToWorld(sx, sy)
	if math.Abs(x-0.15) > 1e-9 || math.Abs(y+0.1) > 1e-9 {
		t.Fatalf("round trip gave (%v, %v)", x, y)
	}
}

func TestKeyboardKeyBounds(t *testing.T) {
	kb := &Keyboard{Keys: []uint64{7, 0}}
	if kb.Key(0) != 7 || kb.Key(1) != 0 || kb.Key(-1) != 0 || kb.Key(2) != 0 {
		t.Fatalf("unexpected key lookups")
	}
	var nilKB *Keyboard
	if nilKB.Key(0) != 0 {
		t.Fatalf("nil keyboard should have no keys")
	}
}
