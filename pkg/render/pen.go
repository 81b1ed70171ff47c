package render

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

const nArc = 16 // quadratic pieces in a circle

// pen does the filled shapes and lines. It reuses one rasterizer.
type pen struct {
	r       *raster.Rasterizer
	painter *raster.RGBAPainter
}

func newPen(dst *image.RGBA) *pen {
	b := dst.Bounds()
	r := raster.NewRasterizer(b.Dx(), b.Dy())
	r.UseNonZeroWinding = true
	return &pen{r: r, painter: raster.NewRGBAPainter(dst)}
}

// maxPx bounds what we hand the rasterizer. 26.6 fixed point overflows
// near 3.3e7 and the stroker makes no progress on NaN or Inf.
const maxPx = 1 << 20

// onPage says whether all values are finite and within maxPx.
func onPage(v ...float64) bool {
	for _, x := range v {
		if !(math.Abs(x) <= maxPx) {
			return false
		}
	}
	return true
}

func fix(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}

// circle makes a closed path from quadratic Béziers. The control point
// for each arc sits on the tangents, r/cos(θ/2) from the centre.
func circle(cx, cy, r float64) raster.Path {
	var path raster.Path
	const step = 2 * math.Pi / nArc
	rc := r / math.Cos(step/2)
	path.Start(fix(cx+r, cy))
	for i := 0; i < nArc; i++ {
		a0 := float64(i) * step
		a1 := a0 + step
		mid := a0 + step/2
		path.Add2(fix(cx+rc*math.Cos(mid), cy+rc*math.Sin(mid)), fix(cx+r*math.Cos(a1), cy+r*math.Sin(a1)))
	}
	return path
}

func (p *pen) paint(path raster.Path, c color.Color) {
	p.r.Clear()
	p.r.AddPath(path)
	p.painter.SetColor(c)
	p.r.Rasterize(p.painter)
}

// disk fills a circle. Circles that are empty or that we cannot
// represent are skipped.
func (p *pen) disk(cx, cy, r float64, c color.Color) {
	if !(r > 0) || !onPage(cx-r, cx+r, cy-r, cy+r) {
		return
	}
	p.paint(circle(cx, cy, r), c)
}

// ball is a disk with a darker rim, so touching atoms of the same
// kind can be told apart.
func (p *pen) ball(cx, cy, r float64, c color.RGBA) {
	const rim = 1.2
	if r <= 2*rim {
		p.disk(cx, cy, r, c)
		return
	}
	p.disk(cx, cy, r, darker(c))
	p.disk(cx, cy, r-rim, c)
}

// line strokes a straight line of the given width in pixels.
// Lines shorter than half a pixel are not drawn, nor are lines with
// ends we cannot represent.
func (p *pen) line(x0, y0, x1, y1, width float64, c color.Color) {
	if !onPage(x0, y0, x1, y1, width) || math.Hypot(x1-x0, y1-y0) < 0.5 {
		return
	}
	var path raster.Path
	path.Start(fix(x0, y0))
	path.Add1(fix(x1, y1))
	p.r.Clear()
	raster.Stroke(p.r, path, fixed.Int26_6(width*64), nil, nil)
	p.painter.SetColor(c)
	p.r.Rasterize(p.painter)
}
