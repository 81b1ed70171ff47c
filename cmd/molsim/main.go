// 12 Jun 2025

package main

import (
	"flag"
	"fmt"
	"os"

	. "github.com/andrew-torda/atomview/pkg/common"
	"github.com/andrew-torda/atomview/pkg/molsim"
)

func main() {
	f := flag.NewFlagSet("molsim", flag.ExitOnError)
	const iseed int64 = 1637
	var args molsim.Args
	var density, molWt float64

	f.IntVar(&args.NUnit, "n", molsim.DfltNUnit, "number of molecules wanted")
	f.Float64Var(&args.Cube, "c", molsim.DfltCube, "edge of the box in Ångström")
	f.Float64Var(&args.MinDist, "d", molsim.DfltMinDist, "closest approach between molecules in Ångström")
	f.IntVar(&args.MaxTry, "m", molsim.DfltMaxTry, "give up after this many attempts")
	f.Int64Var(&args.Seed, "r", iseed, "random number seed")
	f.Float64Var(&density, "rho", molsim.DfltDensity, "density in g/cm³, only for the estimate")
	f.Float64Var(&molWt, "mw", molsim.DfltMolWt, "molecular weight in g/mol, only for the estimate")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if err := args.Check(); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() > 1 || molWt <= 0 {
		fmt.Fprintln(f.Output(), "molsim [options] [file]")
		f.Usage()
		os.Exit(ExitUsageError)
	}

	fname := DfltInput
	if f.NArg() == 1 {
		fname = f.Arg(0)
	}
	var ft *os.File
	if fname == "-" {
		args.Wrtr = os.Stdout
	} else {
		var err error
		if ft, err = os.Create(fname); err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		}
		args.Wrtr = ft
	}

	fmt.Fprintln(os.Stderr, "Estimated maximum number of molecules that fit in the box:",
		molsim.MaxUnits(density, molWt, args.Cube))
	res, err := molsim.Run(&args)
	if ft != nil {
		if e := ft.Close(); err == nil {
			err = e
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	fmt.Fprintln(os.Stderr, "Placed", res.NPlaced, "of", args.NUnit, "in", res.NTry, "attempts")
	if fname != "-" {
		fmt.Fprintln(os.Stderr, "Coordinates (Å) and electronegativity (Pauling) in", fname)
	}
	os.Exit(ExitSuccess)
}
