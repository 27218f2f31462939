package render

import "github.com/hajimehoshi/ebiten/v2"

// CursorPointer reads the mouse cursor, or the first touch when one is
// down. It reports no position while the cursor is outside the screen.
type CursorPointer struct {
	Width  int
	Height int

	touches []ebiten.TouchID
}

func (p *CursorPointer) Position() (float64, float64, bool) {
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		x, y := ebiten.TouchPosition(p.touches[0])
		return float64(x), float64(y), true
	}

	if !ebiten.IsFocused() {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || (p.Width > 0 && x >= p.Width) || (p.Height > 0 && y >= p.Height) {
		return 0, 0, false
	}
	return float64(x), float64(y), true
}
