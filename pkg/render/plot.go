// Package render draws atoms as a 3D scatter plot into an image.RGBA.
// The projection is orthographic. Atoms are painted far ones first so
// near ones cover them. Axes start at the low corner of the bounding box
// and are labelled X, Y and Z.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"github.com/andrew-torda/atomview/pkg/atoms"
	"github.com/andrew-torda/atomview/pkg/attrib"
	"gonum.org/v1/gonum/spatial/r3"
)

const DfltTitle = "Molecule Visualization (Atoms by Type & Size)"

const (
	titleH   = 40  // pixels at the top for the title
	legendW  = 110 // pixels on the right for the legend
	margin   = 20
	fill     = 0.85 // fraction of the plot area the molecule may use
	minAxis  = 0.25 // shortest axis as a fraction of the biggest half extent
	ptPerImg = 576  // points in the height of the image, 8 inches at 72 dpi
)

var (
	bgColor   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	axisColor = color.RGBA{0x40, 0x40, 0x40, 0xff}
	textColor = color.RGBA{0, 0, 0, 0xff}
)

// Plot is everything needed to draw one picture.
type Plot struct {
	Atoms []atoms.Atom
	Table *attrib.Table
	Title string
}

// Point is where an atom lands on the screen.
type Point struct {
	X, Y   float64 // pixels, y grows downwards
	Depth  float64 // bigger is further away
	Radius float64 // pixels
}

// frame holds what we need to go from world to screen for one image size.
// Coordinates may be anywhere in float64 range, so nothing here ever forms
// hi-lo or v-centre directly. Differences are taken on halves and divided
// by unit, the biggest half extent, before they are rotated.
type frame struct {
	centre  r3.Vec
	lo, hi  r3.Vec  // bounding box
	unit    float64 // largest component of (hi-lo)/2, never 0
	px      float64 // pixels per unit of (v-centre)/2
	ox, oy  float64 // screen position of centre
	pxPerPt float64
}

// bbox returns the bounding box. With nothing to look at we pretend there
// is a unit cube so the axes still make sense.
func bbox(atms []atoms.Atom) (lo, hi r3.Vec) {
	if len(atms) == 0 {
		return r3.Vec{X: -1, Y: -1, Z: -1}, r3.Vec{X: 1, Y: 1, Z: 1}
	}
	lo, hi = atms[0].Pos, atms[0].Pos
	for _, a := range atms[1:] {
		p := a.Pos
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	return lo, hi
}

func (p *Plot) frame(bounds image.Rectangle, cam Camera) frame {
	var f frame
	f.lo, f.hi = bbox(p.Atoms)
	f.centre = r3.Add(r3.Scale(0.5, f.lo), r3.Scale(0.5, f.hi))
	half := halfDiff(f.hi, f.lo)
	f.unit = math.Max(half.X, math.Max(half.Y, half.Z))
	if f.unit == 0 || math.IsInf(f.unit, 0) || math.IsNaN(f.unit) {
		f.unit = 1
	}
	diag := r3.Norm(f.reduce(half)) // half diagonal in units, 1 to √3
	if diag == 0 {
		diag = 1
	}
	w := float64(bounds.Dx() - legendW - margin)
	h := float64(bounds.Dy() - titleH - margin)
	f.ox = float64(bounds.Min.X+margin) + w/2
	f.oy = float64(bounds.Min.Y+titleH) + h/2
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	f.px = zoom * fill * math.Max(math.Min(w, h), 1) / diag
	f.pxPerPt = float64(bounds.Dy()) / ptPerImg
	return f
}

// halfDiff is (a-b)/2 without the overflow a-b can give.
func halfDiff(a, b r3.Vec) r3.Vec {
	return r3.Sub(r3.Scale(0.5, a), r3.Scale(0.5, b))
}

// reduce divides by unit. 1/unit may not exist when unit is subnormal.
func (f *frame) reduce(v r3.Vec) r3.Vec {
	return r3.Vec{X: v.X / f.unit, Y: v.Y / f.unit, Z: v.Z / f.unit}
}

// toScreen takes a world position to pixels and depth. Depth is in the
// same reduced units as the screen offset, which is all sorting needs.
func (f *frame) toScreen(rot rotator, v r3.Vec) (x, y, depth float64) {
	right, depth, up := rot(f.reduce(halfDiff(v, f.centre)))
	return f.ox + f.px*right, f.oy - f.px*up, depth
}

type rotator func(r3.Vec) (right, depth, up float64)

func (cam Camera) rotator() rotator {
	m := cam.rotation()
	return func(v r3.Vec) (float64, float64, float64) { return apply(m, v) }
}

// markerRadius converts a marker area in points squared to a radius in pixels.
func (f *frame) markerRadius(size float64) float64 {
	return math.Sqrt(size) / 2 * f.pxPerPt
}

// Project returns the screen position of every atom, in the same order
// as p.Atoms, for an image with the given bounds.
func (p *Plot) Project(bounds image.Rectangle, cam Camera) []Point {
	f := p.frame(bounds, cam)
	rot := cam.rotator()
	ret := make([]Point, len(p.Atoms))
	for i, a := range p.Atoms {
		x, y, d := f.toScreen(rot, a.Pos)
		ret[i] = Point{X: x, Y: y, Depth: d, Radius: f.markerRadius(p.table().Size(a.Symbol))}
	}
	return ret
}

func (p *Plot) table() *attrib.Table {
	if p.Table == nil {
		return attrib.Default()
	}
	return p.Table
}

func (p *Plot) title() string {
	if p.Title == "" {
		return DfltTitle
	}
	return p.Title
}

// axes returns the end points of the three axes, starting from the low
// corner of the box. A flat molecule still gets visible axes.
func (f *frame) axes() (origin r3.Vec, ends [3]r3.Vec) {
	origin = f.lo
	short := minAxis * f.unit
	ends[0], ends[1], ends[2] = origin, origin, origin
	ends[0].X = axisEnd(f.lo.X, f.hi.X, short)
	ends[1].Y = axisEnd(f.lo.Y, f.hi.Y, short)
	ends[2].Z = axisEnd(f.lo.Z, f.hi.Z, short)
	return origin, ends
}

// axisEnd is hi, or lo+short if that is further, clamped to finite values.
func axisEnd(lo, hi, short float64) float64 {
	e := math.Max(hi, lo+short)
	if math.IsInf(e, 1) {
		return math.MaxFloat64
	}
	return e
}

// darker is used for the rim around each atom.
func darker(c color.RGBA) color.RGBA {
	const f = 0.6
	return color.RGBA{uint8(f * float64(c.R)), uint8(f * float64(c.G)), uint8(f * float64(c.B)), c.A}
}

// Draw paints the whole plot into dst. The image should start at (0,0),
// which is what image.NewRGBA with a zero Min gives.
func (p *Plot) Draw(dst *image.RGBA, cam Camera) error {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, image.NewUniform(bgColor), image.Point{}, draw.Src)
	f := p.frame(bounds, cam)
	rot := cam.rotator()
	pen := newPen(dst)

	txt, err := newText(dst, labelSize)
	if err != nil {
		return err
	}

	origin, ends := f.axes()
	ox, oy, _ := f.toScreen(rot, origin)
	for i, end := range ends {
		ex, ey, _ := f.toScreen(rot, end)
		pen.line(ox, oy, ex, ey, 1.5, axisColor)
		// push the label a little beyond the end of the axis
		dx, dy := ex-ox, ey-oy
		if l := math.Hypot(dx, dy); l > 0 {
			dx, dy = dx/l, dy/l
		}
		lx, ly := ex+12*dx, ey+12*dy
		lbl := axisNames[i]
		if err := txt.draw(lbl, int(lx)-txt.width(lbl)/2, int(ly)+txt.height()/2); err != nil {
			return err
		}
	}

	tbl := p.table()
	pts := p.Project(bounds, cam)
	order := make([]int, len(pts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return pts[order[i]].Depth > pts[order[j]].Depth })
	for _, i := range order {
		c := tbl.RGBA(p.Atoms[i].Symbol)
		pen.ball(pts[i].X, pts[i].Y, pts[i].Radius, c)
	}

	if err := p.drawTitle(dst); err != nil {
		return err
	}
	return p.drawLegend(dst, pen, txt)
}

var axisNames = [3]string{"X", "Y", "Z"}

func (p *Plot) drawTitle(dst *image.RGBA) error {
	txt, err := newText(dst, titleSize)
	if err != nil {
		return err
	}
	s := p.title()
	x := dst.Bounds().Min.X + (dst.Bounds().Dx()-txt.width(s))/2
	y := dst.Bounds().Min.Y + (titleH+txt.height())/2
	return txt.draw(s, x, y)
}

// drawLegend puts one line per symbol in the right hand column.
func (p *Plot) drawLegend(dst *image.RGBA, pen *pen, txt *text) error {
	const (
		rowH    = 22
		markerR = 6
	)
	tbl := p.table()
	x := float64(dst.Bounds().Max.X - legendW + margin/2)
	y := float64(dst.Bounds().Min.Y + titleH + rowH/2)
	for _, sym := range Legend(p.Atoms) {
		pen.ball(x+markerR, y, markerR, tbl.RGBA(sym))
		if err := txt.draw(sym, int(x)+3*markerR, int(y)+txt.height()/2); err != nil {
			return err
		}
		y += rowH
	}
	return nil
}

// Image is a convenience that makes a new image and draws into it.
func (p *Plot) Image(width, height int, cam Camera) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := p.Draw(img, cam); err != nil {
		return nil, err
	}
	return img, nil
}
