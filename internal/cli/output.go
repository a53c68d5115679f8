package cli

import (
	"fmt"
	"io"
)

// renderSubsets writes one subset per line.
func renderSubsets(w io.Writer, subsets [][]int) error {
	for _, s := range subsets {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// renderSums writes one sum per line.
func renderSums(w io.Writer, sums []int) error {
	for _, s := range sums {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
