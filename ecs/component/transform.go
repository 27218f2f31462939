package component

// Transform is a position in world units (meters). Y points up.
type Transform struct {
	X float64
	Y float64
	Z float64
}

// Translate moves the transform by the given offset.
func (t *Transform) Translate(dx, dy, dz float64) {
	if t == nil {
		return
	}
	t.X += dx
	t.Y += dy
	t.Z += dz
}

var TransformComponent = NewComponent[Transform]()
