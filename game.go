package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/keyboard/assets"
	"github.com/milk9111/keyboard/ecs"
	"github.com/milk9111/keyboard/ecs/component"
	"github.com/milk9111/keyboard/ecs/entity"
	"github.com/milk9111/keyboard/ecs/render"
	"github.com/milk9111/keyboard/ecs/system"
	"github.com/milk9111/keyboard/prefabs"
	"github.com/sirupsen/logrus"
)

// maxFrameDelta caps a single tick so a stalled window does not finish
// every fade at once.
const maxFrameDelta = 100 * time.Millisecond

type Game struct {
	opts options
	log  *logrus.Logger

	world    *ecs.World
	hover    *system.HoverSystem
	pointer  *render.CursorPointer
	renderer *render.Renderer
	watcher  *prefabs.Watcher

	last time.Time
}

func NewGame(opts options, log *logrus.Logger) (*Game, error) {
	g := &Game{
		opts:    opts,
		log:     log,
		pointer: &render.CursorPointer{Width: opts.width, Height: opts.height},
	}
	if err := g.load(); err != nil {
		return nil, err
	}

	if opts.watch {
		watcher, err := prefabs.NewWatcher(watchDirs()...)
		if err != nil {
			log.WithError(err).Warn("keyboard: hot reload disabled")
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

// load builds a fresh world from the prefab. The previous world is only
// replaced once the new one is ready.
func (g *Game) load() error {
	spec, err := prefabs.LoadKeyboardSpec(g.opts.config)
	if err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}
	if g.opts.fade > 0 {
		spec.FadeDuration = g.opts.fade
	}
	spec.Camera.ScreenWidth = g.opts.width
	spec.Camera.ScreenHeight = g.opts.height

	w := ecs.NewWorld()
	hover := system.NewHoverSystem(g.pointer)
	w.AddSystem(hover)
	w.AddSystem(system.NewToneSystem(g.log))
	w.AddSystem(system.NewFadeSystem())

	_, err = entity.BuildKeyboard(context.Background(), w, spec, entity.KeyboardOptions{
		Clips:  assets.LoadClip,
		Voices: assets.NewVoice,
		Logger: g.log,
	})
	if err != nil && !errors.Is(err, entity.ErrLengthMismatch) {
		entity.ReleaseVoices(w, g.log)
		return err
	}

	if g.world != nil {
		entity.ReleaseVoices(g.world, g.log)
	}
	g.world = w
	g.hover = hover
	g.renderer = render.NewRenderer(spec.Colors)
	g.last = time.Time{}
	g.log.WithField("config", g.opts.config).Info("keyboard: loaded")
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.reloadIfChanged()

	now := time.Now()
	dt := time.Duration(0)
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	g.last = now

	g.world.Tick(dt)
	return nil
}

func (g *Game) reloadIfChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		g.log.WithField("path", path).Info("keyboard: change detected, rebuilding")
		if err := g.load(); err != nil {
			g.log.WithError(err).Error("keyboard: rebuild failed, keeping the current keyboard")
		}
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			g.log.WithError(err).Warn("keyboard: watcher")
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	if g.log.IsLevelEnabled(logrus.DebugLevel) {
		hovered := "none"
		if e := g.hover.Hovered(); e.Valid() {
			if key, ok := ecs.Get(g.world, e, component.KeyComponent.Kind()); ok {
				hovered = key.Name
			}
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    TPS: %.2f    frame: %d    hovered: %s", ebiten.ActualFPS(), ebiten.ActualTPS(), g.world.Frame(), hovered))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.width, g.opts.height
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.world != nil {
		entity.ReleaseVoices(g.world, g.log)
	}
}

func watchDirs() []string {
	var dirs []string
	for _, dir := range []string{"prefabs", filepath.Join("prefabs", "scripts"), "levels"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
