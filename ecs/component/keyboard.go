package component

import "github.com/jakecoffman/cp"

const (
	DefaultFadeDuration = 0.5
	DefaultPressDepth   = 0.01
)

// Keyboard is the singleton produced by binding. Keys is parallel to the
// configured tone sequence; a zero entry is a key that was never bound.
type Keyboard struct {
	Keys              []uint64
	FadeDuration      float64
	PressDepth        float64
	CancelFadeOnPress bool
	Space             *cp.Space
}

// Key returns the entity bound at index, or 0.
func (k *Keyboard) Key(index int) uint64 {
	if k == nil || index < 0 || index >= len(k.Keys) {
		return 0
	}
	return k.Keys[index]
}

var KeyboardComponent = NewComponent[Keyboard]()
