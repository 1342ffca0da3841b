package satsolve

import (
	"errors"
	"fmt"

	"github.com/arcrouting/tunnelsat/satfacade"
)

// ErrDecode wraps a malformed model: some node has zero or more than one
// colour variable true.
var ErrDecode = errors.New("satsolve: malformed model")

// Decode reads, for each of numNodes, the unique true c(n,k) variable and
// returns the resulting colouring, per spec.md §4.E's decoder.
func Decode(ctx *satfacade.Context, model satfacade.Model, numNodes, numColours int) ([]int, error) {
	v := vars{ctx: ctx}
	colours := make([]int, numNodes)
	for n := 0; n < numNodes; n++ {
		found := false
		for k := 0; k < numColours; k++ {
			if !model.Value(v.c(n, k)) {
				continue
			}
			if found {
				return nil, fmt.Errorf("%w: node %d has more than one colour true", ErrDecode, n)
			}
			colours[n], found = k, true
		}
		if !found {
			return nil, fmt.Errorf("%w: node %d has no colour true", ErrDecode, n)
		}
	}
	return colours, nil
}
