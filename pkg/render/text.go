package render

import (
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	dpi       = 72
	titleSize = 16
	labelSize = 12
)

// The Go font is compiled in, so there is nothing to find at run time.
var goFont, goFontErr = freetype.ParseFont(goregular.TTF)

// text draws strings of one size and colour into one image.
type text struct {
	ctx  *freetype.Context
	face font.Face
}

func newText(dst *image.RGBA, size float64) (*text, error) {
	if goFontErr != nil {
		return nil, goFontErr
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(goFont)
	ctx.SetFontSize(size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(textColor))
	ctx.SetHinting(font.HintingFull)
	face := truetype.NewFace(goFont, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull})
	return &text{ctx: ctx, face: face}, nil
}

// draw puts s with its baseline starting at x, y.
func (t *text) draw(s string, x, y int) error {
	_, err := t.ctx.DrawString(s, freetype.Pt(x, y))
	return err
}

func (t *text) width(s string) int {
	return font.MeasureString(t.face, s).Ceil()
}

// height is the ascent, which is what we need for centring capitals.
func (t *text) height() int {
	return t.face.Metrics().Ascent.Ceil()
}
