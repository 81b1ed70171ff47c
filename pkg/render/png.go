package render

import (
	"bufio"
	"image"
	"image/png"
	"io"
	"os"
)

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, img); err != nil {
		return err
	}
	return bw.Flush()
}

// SavePNG draws the plot and writes it to fname.
func (p *Plot) SavePNG(fname string, width, height int, cam Camera) error {
	img, err := p.Image(width, height, cam)
	if err != nil {
		return err
	}
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := WritePNG(fp, img); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
