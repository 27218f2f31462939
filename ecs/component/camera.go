package component

// Camera maps world units to screen pixels. X and Y are the world point
// drawn at the screen center; world Y grows up, screen Y grows down.
type Camera struct {
	X             float64
	Y             float64
	PixelsPerUnit float64
	ScreenWidth   float64
	ScreenHeight  float64
}

func (c *Camera) scale() float64 {
	if c == nil || c.PixelsPerUnit <= 0 {
		return 1
	}
	return c.PixelsPerUnit
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	if c == nil {
		return x, y
	}
	s := c.scale()
	return (x-c.X)*s + c.ScreenWidth/2, c.ScreenHeight/2 - (y-c.Y)*s
}

// ScreenToWorld converts screen pixels to a world position.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	if c == nil {
		return sx, sy
	}
	s := c.scale()
	return (sx-c.ScreenWidth/2)/s + c.X, (c.ScreenHeight/2-sy)/s + c.Y
}

var CameraComponent = NewComponent[Camera]()
