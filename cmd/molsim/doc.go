// 12 Jun 2025

/*

Molsim makes coordinate files for atomview. It drops water molecules at
random positions and orientations into a cube, throwing away any
molecule which comes too close to one already placed.
Usage:
	molsim [options] [file]
writes to points_with_symbols.txt if no file is given, or standard
output if the file is "-".

Each line is
	symbol x y z electronegativity
with three decimals.

Flags:
	-n
		number of molecules wanted (33)
	-c
		edge of the cube in Ångström (10)
	-d
		minimum distance between atoms of different molecules (2.5)
	-m
		maximum attempts before giving up (10000)
	-r
		random number seed
	-rho, -mw
		density and molecular weight. These are only used to print
		an estimate of how many molecules could fit.

The -n, -c, -d and -m values must all be positive. Zero is an error
here, not a request for the default.

If the box is too full, fewer molecules than asked for are placed. The
number is printed at the end.

*/
package main
