package render

import (
	"github.com/andrew-torda/atomview/pkg/atoms"
)

// Legend returns each symbol once, in the order it first appears.
func Legend(atms []atoms.Atom) []string {
	seen := make(map[string]bool)
	var ret []string
	for _, a := range atms {
		if !seen[a.Symbol] {
			seen[a.Symbol] = true
			ret = append(ret, a.Symbol)
		}
	}
	return ret
}
