package render

import (
	"math"

	"github.com/andrew-torda/matrix"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	deg      = math.Pi / 180
	maxPitch = 90 * deg
	minZoom  = 0.1
	maxZoom  = 20
)

// Camera says how we look at the molecule. Yaw turns about the
// z axis, then Pitch tilts about the screen's horizontal axis.
// Z is always up on the screen when Pitch is zero.
type Camera struct {
	Yaw, Pitch float64 // radians
	Zoom       float64 // 1 means the molecule just fits
}

// DefaultCamera is a little above and to the side.
func DefaultCamera() Camera {
	return Camera{Yaw: -30 * deg, Pitch: 20 * deg, Zoom: 1}
}

// Turn changes yaw and pitch. Pitch stops at straight up or down.
func (c *Camera) Turn(dYaw, dPitch float64) {
	c.Yaw = math.Remainder(c.Yaw+dYaw, 2*math.Pi)
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+dPitch))
}

// Scale multiplies the zoom, within limits.
func (c *Camera) Scale(f float64) {
	c.Zoom = math.Max(minZoom, math.Min(maxZoom, c.Zoom*f))
}

// rotation gives the 3x3 matrix taking world coordinates to
//   row 0: screen right
//   row 1: depth, bigger is further away
//   row 2: screen up
func (c Camera) rotation() *matrix.FMatrix2d {
	sy, cy := math.Sincos(c.Yaw)
	sp, cp := math.Sincos(c.Pitch)
	m := matrix.NewFMatrix2d(3, 3)
	rows := [3][3]float64{
		{cy, -sy, 0},
		{cp * sy, cp * cy, -sp},
		{sp * sy, sp * cy, cp},
	}
	for i := range rows {
		for j := range rows[i] {
			m.Mat[i][j] = float32(rows[i][j])
		}
	}
	return m
}

// apply multiplies v by the rotation.
func apply(m *matrix.FMatrix2d, v r3.Vec) (right, depth, up float64) {
	var out [3]float64
	for i := range out {
		row := m.Mat[i]
		out[i] = float64(row[0])*v.X + float64(row[1])*v.Y + float64(row[2])*v.Z
	}
	return out[0], out[1], out[2]
}
