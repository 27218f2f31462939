package component

import "image/color"

// Appearance is the rendered box of a key: its size in world units, fill
// color and label. Entities without one are not drawn.
type Appearance struct {
	Width  float64
	Height float64
	Color  color.RGBA
	Label  string
}

var AppearanceComponent = NewComponent[Appearance]()
