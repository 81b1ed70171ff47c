// Package attrib maps an element symbol to how it is drawn, a colour name
// and a marker size. The size is an area in points squared, the way
// matplotlib measures scatter markers.
// Lookups are case sensitive. Anything not in a table gets the default.
package attrib

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	DefaultColor         = "gray"
	DefaultSize  float64 = 150
	MaxSize      float64 = 1e5 // biggest marker area a table may ask for
)

var dfltColors = map[string]string{
	"H":  "blue",
	"O":  "red",
	"N":  "white",
	"C":  "red",
	"F":  "green",
	"Cl": "green",
	"S":  "yellow",
	"P":  "orange",
}

var dfltSizes = map[string]float64{
	"H":  100,
	"C":  100,
	"N":  250,
	"O":  100,
	"F":  240,
	"Cl": 240,
	"S":  280,
	"P":  280,
}

// Table holds the two lookups. Once built it is not changed, so it can
// be handed around freely.
type Table struct {
	colors map[string]string
	sizes  map[string]float64
}

// Default returns the built in table.
func Default() *Table {
	return newTable(nil, nil)
}

// newTable copies the defaults and lays the extra entries on top.
func newTable(colors map[string]string, sizes map[string]float64) *Table {
	t := &Table{
		colors: make(map[string]string, len(dfltColors)+len(colors)),
		sizes:  make(map[string]float64, len(dfltSizes)+len(sizes)),
	}
	for k, v := range dfltColors {
		t.colors[k] = v
	}
	for k, v := range colors {
		t.colors[k] = v
	}
	for k, v := range dfltSizes {
		t.sizes[k] = v
	}
	for k, v := range sizes {
		t.sizes[k] = v
	}
	return t
}

// Color returns the colour name for a symbol.
func (t *Table) Color(sym string) string {
	if c, ok := t.colors[sym]; ok {
		return c
	}
	return DefaultColor
}

// Size returns the marker area for a symbol.
func (t *Table) Size(sym string) float64 {
	if s, ok := t.sizes[sym]; ok {
		return s
	}
	return DefaultSize
}

// Resolve gives both at once.
func (t *Table) Resolve(sym string) (string, float64) {
	return t.Color(sym), t.Size(sym)
}

// RGBA turns the colour name into something we can paint with.
// Names come from the SVG set. Tables read from file are checked when
// read, so an unknown name can only come from a programming error, but
// we still fall back to the default rather than paint black.
func (t *Table) RGBA(sym string) color.RGBA {
	if c, ok := colornames.Map[t.Color(sym)]; ok {
		return c
	}
	return colornames.Map[DefaultColor]
}
