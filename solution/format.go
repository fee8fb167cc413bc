package solution

import (
	"fmt"
	"io"
	"strings"
)

// String renders the individual in the VRPLIB-style solution format spec.md
// §6 requires: one "Route #i: c1 c2 ..." line per non-empty route, in order,
// followed by a "Distance: D" line.
//
// Grounded on operator<<(ostream&, Individual const&) in
// _examples/original_source/hgs/src/Individual.cpp, adapted to the exact
// "Distance: D" trailer spec.md names (the original writes "Cost ...").
func (ind *Individual) String() string {
	var b strings.Builder
	_, _ = ind.WriteTo(&b)
	return b.String()
}

// WriteTo writes the VRPLIB-style solution format to w; see String.
func (ind *Individual) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for r := 0; r < ind.nbRoutes; r++ {
		n, err := fmt.Fprintf(w, "Route #%d:", r+1)
		written += int64(n)
		if err != nil {
			return written, err
		}
		for _, c := range ind.routes[r] {
			n, err = fmt.Fprintf(w, " %d", c)
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
		n, err = fmt.Fprintln(w)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	n, err := fmt.Fprintf(w, "Distance: %d\n", ind.distance)
	written += int64(n)
	return written, err
}
