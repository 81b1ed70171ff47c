// 12 Jun 2025
/*

atomview draws atoms as a 3D scatter plot. Each atom is a ball coloured
and sized by its element. It is for looking at the output of molsim or
anything else which writes

  symbol x y z

one atom per line. Anything after the fourth field is ignored and lines
with fewer than four fields are skipped. If a coordinate is not a number,
we stop with the line number and draw nothing. The file may be gzipped.

Usage:
 atomview [options] [file]

Without a file name, we read points_with_symbols.txt in the current
directory.

Flags:
  -o file.png
	Draw into a png file and do not open a window.
  -t table
	Colours and sizes to add or replace. Each line is
	  symbol colour size
	Colours are SVG names like "orange" or "lightblue". Size is the
	area of the ball in points squared, or "-" to leave it alone.
	Anything after a # is a comment.
  -w
	Watch the file and redraw when it changes. If the new version
	is broken, keep showing the old one.
  -W, -H
	Width and height in pixels.
  -title
	Text at the top of the plot.
  -v dest
	Log what we read to dest, which may be stdout, stderr or a file.

In the window, the arrow keys or dragging with the mouse turn the
molecule, + and - or the wheel zoom, r goes back to the first view and
q or escape quits.

Elements we do not know are drawn grey with size 150. Lookups are case
sensitive, so "cl" is not chlorine.

*/
package main
