package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
	"github.com/milk9111/keyboard/prefabs"
	"golang.org/x/image/font/basicfont"
)

var (
	defaultHover      = color.RGBA{R: 0xff, G: 0xd8, B: 0x66, A: 0xff}
	defaultBackground = color.RGBA{R: 0x1e, G: 0x1e, B: 0x24, A: 0xff}
	defaultLabel      = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	outline           = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

// Renderer draws every entity with a Transform and an Appearance as a
// labelled box, lowest Z first.
type Renderer struct {
	face       text.Face
	hover      color.RGBA
	background color.RGBA
	label      color.RGBA
}

func NewRenderer(colors prefabs.KeyColorSpec) *Renderer {
	return &Renderer{
		face:       text.NewGoXFace(basicfont.Face7x13),
		hover:      colors.Hover.RGBA8(defaultHover),
		background: colors.Background.RGBA8(defaultBackground),
		label:      colors.Label.RGBA8(defaultLabel),
	}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(r.background)

	var cam *component.Camera
	if camEnt, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		cam, _ = ecs.Get(w, camEnt, component.CameraComponent.Kind())
	}
	scale := 1.0
	if cam != nil && cam.PixelsPerUnit > 0 {
		scale = cam.PixelsPerUnit
	}

	var items []drawable
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.AppearanceComponent.Kind(), func(e ecs.Entity, t *component.Transform, app *component.Appearance) {
		items = append(items, drawable{e: e, t: t, app: app})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].t.Z != items[j].t.Z {
			return items[i].t.Z < items[j].t.Z
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		e, t, app := it.e, it.t, it.app
		cx, cy := cam.WorldToScreen(t.X, t.Y)
		wdt, hgt := app.Width*scale, app.Height*scale
		x, y := cx-wdt/2, cy-hgt/2

		fill := app.Color
		if fill.A == 0 {
			fill = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
		}
		if hovered(w, e) {
			fill = r.hover
		}
		vector.FillRect(screen, float32(x), float32(y), float32(wdt), float32(hgt), fill, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(wdt), float32(hgt), 1.0, outline, false)

		if app.Label != "" {
			op := &text.DrawOptions{}
			op.GeoM.Translate(cx, y+hgt-20)
			op.ColorScale.ScaleWithColor(r.label)
			op.PrimaryAlign = text.AlignCenter
			text.Draw(screen, app.Label, r.face, op)
		}
	}
}

type drawable struct {
	e   ecs.Entity
	t   *component.Transform
	app *component.Appearance
}

// hovered reports whether e, or the key a visual belongs to, is under the
// pointer.
func hovered(w *ecs.World, e ecs.Entity) bool {
	if inter, ok := ecs.Get(w, e, component.InteractableComponent.Kind()); ok && inter.Hovered {
		return true
	}
	v, ok := ecs.Get(w, e, component.VisualComponent.Kind())
	if !ok {
		return false
	}
	inter, ok := ecs.Get(w, ecs.Entity(v.Parent), component.InteractableComponent.Kind())
	return ok && inter.Hovered
}
