package render

import (
	"image"

	"github.com/andrew-torda/atomview/pkg/atoms"
)

// Scene is a Plot seen through a Camera, drawn into an image of fixed
// size. It only redraws when something changed. It is not safe for use
// from more than one goroutine; the window owns it.
type Scene struct {
	plot  Plot
	cam   Camera
	img   *image.RGBA
	dirty bool
}

// NewScene makes a width x height scene with the default camera.
func NewScene(p Plot, width, height int) *Scene {
	return &Scene{
		plot:  p,
		cam:   DefaultCamera(),
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		dirty: true,
	}
}

func (s *Scene) Camera() Camera { return s.cam }
func (s *Scene) Size() (int, int) {
	return s.img.Bounds().Dx(), s.img.Bounds().Dy()
}

// Turn rotates the view.
func (s *Scene) Turn(dYaw, dPitch float64) {
	if dYaw == 0 && dPitch == 0 {
		return
	}
	s.cam.Turn(dYaw, dPitch)
	s.dirty = true
}

// Zoom scales the view by f.
func (s *Scene) Zoom(f float64) {
	if f == 1 {
		return
	}
	s.cam.Scale(f)
	s.dirty = true
}

// Reset goes back to the starting camera.
func (s *Scene) Reset() {
	s.cam = DefaultCamera()
	s.dirty = true
}

// SetAtoms swaps in a new set of atoms, for example after the file
// was rewritten. The camera is left alone.
func (s *Scene) SetAtoms(a []atoms.Atom) {
	s.plot.Atoms = a
	s.dirty = true
}

// Title is what goes on the window.
func (s *Scene) Title() string { return s.plot.title() }

// Frame returns the current picture. changed says if it was redrawn
// since the last call.
func (s *Scene) Frame() (img *image.RGBA, changed bool, err error) {
	if !s.dirty {
		return s.img, false, nil
	}
	if err := s.plot.Draw(s.img, s.cam); err != nil {
		return nil, false, err
	}
	s.dirty = false
	return s.img, true, nil
}
