// 12 Jun 2025

// Package molsim makes coordinate files for the viewer. It throws copies
// of a small molecule into a cube at random positions and orientations,
// refusing any copy which would put an atom too close to one already
// placed. It knows nothing about bonds.
package molsim

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/andrew-torda/atomview/pkg/atoms"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	DfltNUnit   = 33
	DfltCube    = 10.0 // Å
	DfltMinDist = 2.5  // Å
	DfltMaxTry  = 10000
	DfltDensity = 1.0  // g/cm³
	DfltMolWt   = 18.0 // g/mol
	avogadro    = 6.022e23
	ang3ToCm3   = 1e-24
	dfltEN      = 2.5
)

// Water is the default template.
var Water = []atoms.Atom{
	{Symbol: "O", Pos: r3.Vec{X: 0.000, Y: -0.064, Z: 0}},
	{Symbol: "H", Pos: r3.Vec{X: 0.816, Y: 0.513, Z: 0}},
	{Symbol: "H", Pos: r3.Vec{X: -0.816, Y: 0.513, Z: 0}},
}

// Pauling electronegativities, written as a fifth column. The viewer
// ignores it.
var electroNeg = map[string]float64{
	"H": 2.20, "C": 2.55, "N": 3.04, "O": 3.44,
	"F": 3.98, "P": 2.19, "S": 2.58, "Cl": 3.16,
}

// ElectroNeg returns the Pauling electronegativity or 2.5 if we do not
// know the element.
func ElectroNeg(sym string) float64 {
	if en, ok := electroNeg[sym]; ok {
		return en
	}
	return dfltEN
}

// Args is the set of arguments passed to Run. Zero values get defaults.
type Args struct {
	Seed     int64        // random number seed
	Wrtr     io.Writer    // where we write to
	NUnit    int          // copies wanted
	Cube     float64      // edge of the box
	MinDist  float64      // closest two atoms in different copies may be
	MaxTry   int          // give up after this many placements
	Template []atoms.Atom // molecule to copy
}

// Check is for arguments somebody typed in. Unlike Run, it does not
// read zero as "use the default", so "-d 0" is an error rather than 2.5.
func (a *Args) Check() error {
	switch {
	case a.NUnit < 1:
		return fmt.Errorf("number of molecules %d, must be at least 1", a.NUnit)
	case !(a.Cube > 0) || math.IsInf(a.Cube, 1):
		return fmt.Errorf("box edge %g, must be positive", a.Cube)
	case !(a.MinDist > 0) || math.IsInf(a.MinDist, 1):
		return fmt.Errorf("minimum distance %g, must be positive", a.MinDist)
	case a.MaxTry < 1:
		return fmt.Errorf("maximum attempts %d, must be at least 1", a.MaxTry)
	}
	return nil
}

func (a *Args) fillDefaults() {
	if a.NUnit == 0 {
		a.NUnit = DfltNUnit
	}
	if a.Cube == 0 {
		a.Cube = DfltCube
	}
	if a.MinDist == 0 {
		a.MinDist = DfltMinDist
	}
	if a.MaxTry == 0 {
		a.MaxTry = DfltMaxTry
	}
	if a.Template == nil {
		a.Template = Water
	}
}

// MaxUnits estimates how many molecules of the given density and
// molecular weight fit in a cube with edge cube Ångström.
func MaxUnits(density, molWeight, cube float64) int {
	vol := cube * cube * cube * ang3ToCm3
	return int(density * vol * avogadro / molWeight)
}

// translate returns a shifted copy of unit.
func translate(unit []atoms.Atom, d r3.Vec) []atoms.Atom {
	ret := make([]atoms.Atom, len(unit))
	for i, a := range unit {
		ret[i] = atoms.Atom{Symbol: a.Symbol, Pos: r3.Add(a.Pos, d)}
	}
	return ret
}

// rotate turns unit about the origin by three angles, one per axis,
// applied x, then y, then z.
func rotate(unit []atoms.Atom, ax, ay, az float64) []atoms.Atom {
	sx, cx := math.Sincos(ax)
	sy, cy := math.Sincos(ay)
	sz, cz := math.Sincos(az)
	ret := make([]atoms.Atom, len(unit))
	for i, a := range unit {
		x, y, z := a.Pos.X, a.Pos.Y, a.Pos.Z
		y1 := cx*y - sx*z
		z1 := sx*y + cx*z
		x2 := cy*x + sy*z1
		z2 := -sy*x + cy*z1
		x3 := cz*x2 - sz*y1
		y3 := sz*x2 + cz*y1
		ret[i] = atoms.Atom{Symbol: a.Symbol, Pos: r3.Vec{X: x3, Y: y3, Z: z2}}
	}
	return ret
}

func randomRotate(unit []atoms.Atom, rnd *rand.Rand) []atoms.Atom {
	const twoPi = 2 * math.Pi
	return rotate(unit, rnd.Float64()*twoPi, rnd.Float64()*twoPi, rnd.Float64()*twoPi)
}

// fits says if no atom of unit is closer than minDist to any of placed.
func fits(unit, placed []atoms.Atom, minDist float64) bool {
	for _, a := range unit {
		for _, b := range placed {
			if r3.Norm(r3.Sub(a.Pos, b.Pos)) < minDist {
				return false
			}
		}
	}
	return true
}

// Result says how it went.
type Result struct {
	NPlaced int
	NTry    int
	Atoms   []atoms.Atom
}

// Place does the work without writing anything.
func Place(args *Args) Result {
	args.fillDefaults()
	rnd := rand.New(rand.NewSource(args.Seed))
	var res Result
	for res.NPlaced < args.NUnit && res.NTry < args.MaxTry {
		res.NTry++
		d := r3.Vec{X: rnd.Float64() * args.Cube, Y: rnd.Float64() * args.Cube, Z: rnd.Float64() * args.Cube}
		unit := translate(randomRotate(args.Template, rnd), d)
		if fits(unit, res.Atoms, args.MinDist) {
			res.Atoms = append(res.Atoms, unit...)
			res.NPlaced++
		}
	}
	return res
}

// Write puts atoms out as symbol, x, y, z and electronegativity with
// three decimals.
func Write(w io.Writer, atms []atoms.Atom) error {
	bw := bufio.NewWriter(w)
	for _, a := range atms {
		fmt.Fprintf(bw, "%s %.3f %.3f %.3f %.3f\n", a.Symbol, a.Pos.X, a.Pos.Y, a.Pos.Z, ElectroNeg(a.Symbol))
	}
	return bw.Flush()
}

// Run places molecules and writes them to args.Wrtr.
func Run(args *Args) (Result, error) {
	if args.Wrtr == nil {
		return Result{}, fmt.Errorf("molsim: no writer")
	}
	res := Place(args)
	if err := Write(args.Wrtr, res.Atoms); err != nil {
		return res, err
	}
	return res, nil
}
