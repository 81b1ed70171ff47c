// Package view puts a render.Scene in a desktop window and lets one
// turn it around. Nothing can be edited.
//
//	arrow keys, left drag   rotate
//	+ - and the wheel       zoom
//	r                       back to the starting view
//	q, escape               quit
package view

import (
	"log"
	"math"

	"github.com/andrew-torda/atomview/pkg/atoms"
	"github.com/andrew-torda/atomview/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	keyStep  = 2 * math.Pi / 180 // radians per tick with a key held
	dragStep = 0.01             // radians per pixel dragged
	zoomStep = 1.02
	wheelF   = 1.1
)

// Config is what Run needs. Reload and Errs may be nil.
type Config struct {
	Scene  *render.Scene
	Reload <-chan []atoms.Atom
	Errs   <-chan error
	Log    *log.Logger
}

// Run opens the window and blocks until it is closed.
func Run(cfg Config) error {
	if cfg.Log == nil {
		cfg.Log = log.New(log.Writer(), "", 0)
	}
	w, h := cfg.Scene.Size()
	ebiten.SetWindowTitle(cfg.Scene.Title())
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(30)
	g := &game{cfg: cfg, canvas: ebiten.NewImage(w, h)}
	return ebiten.RunGame(g)
}

type game struct {
	cfg      Config
	canvas   *ebiten.Image
	dragging bool
	lastX    int
	lastY    int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.poll()
	s := g.cfg.Scene

	var dYaw, dPitch float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dYaw -= keyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dYaw += keyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dPitch += keyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dPitch -= keyStep
	}
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			dYaw += dragStep * float64(x-g.lastX)
			dPitch += dragStep * float64(y-g.lastY)
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y
	s.Turn(dYaw, dPitch)

	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		s.Zoom(zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		s.Zoom(1 / zoomStep)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.Zoom(math.Pow(wheelF, wy))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reset()
	}
	return nil
}

// poll picks up a reload without waiting for one.
func (g *game) poll() {
	select {
	case a := <-g.cfg.Reload:
		g.cfg.Log.Println("reloaded", len(a), "atoms")
		g.cfg.Scene.SetAtoms(a)
	default:
	}
	select {
	case err := <-g.cfg.Errs:
		g.cfg.Log.Println("reload failed, keeping the old picture:", err)
	default:
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	img, changed, err := g.cfg.Scene.Frame()
	if err != nil {
		g.cfg.Log.Println(err)
		return
	}
	if changed {
		g.canvas.WritePixels(img.Pix)
	}
	screen.DrawImage(g.canvas, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Scene.Size()
}
