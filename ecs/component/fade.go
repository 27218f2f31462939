package component

import "github.com/milk9111/keyboard/common"

// FadePass is one in-flight fade-out. From is the emitter volume when the
// pass started; Release is the distance the visual moves back up when the
// pass completes.
type FadePass struct {
	Elapsed  float64
	Duration float64
	From     float64
	Release  float64
}

// Progress returns the elapsed fraction in [0, 1].
func (p FadePass) Progress() float64 {
	if p.Duration <= 0 {
		return 1
	}
	return common.Clamp(p.Elapsed/p.Duration, 0, 1)
}

// Done reports whether the pass reached its duration.
func (p FadePass) Done() bool {
	return p.Elapsed >= p.Duration
}

// Volume is the linearly interpolated volume at the current progress.
func (p FadePass) Volume() float64 {
	return common.Lerp(p.From, 0, p.Progress())
}

// FadeOut holds every fade pass running on a key. A new hover-exit appends a
// pass; passes are not cancelled by a new press unless the keyboard asks.
type FadeOut struct {
	Passes []FadePass
}

var FadeOutComponent = NewComponent[FadeOut]()
