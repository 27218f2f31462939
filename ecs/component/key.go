package component

// Key is one pressable keyboard key. Index points into the keyboard's
// parallel key/tone sequences. Visual is the child entity that renders the
// key (ecs.Entity is uint64); zero when visuals are disabled.
type Key struct {
	Index  int
	Name   string
	Visual uint64
}

var KeyComponent = NewComponent[Key]()

// Visual marks the rendered clone of a key.
type Visual struct {
	Parent uint64
}

var VisualComponent = NewComponent[Visual]()
