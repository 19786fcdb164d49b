package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/bioseq/sparse"
)

// ExampleFindKmerMatches lists the exact 4-mer anchors between two
// sequences.
func ExampleFindKmerMatches() {
	seeds := sparse.FindKmerMatches([]byte("ACGTACGTACGT"), []byte("TTACGTAATTACGT"), 4)
	fmt.Println(len(seeds))
	// Output: 12
}

// ExampleChain scores a run of three diagonal 5-mer seeds.
func ExampleChain() {
	seeds := []sparse.Seed{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	res := sparse.Chain(seeds, 5, 2, -5, -1)
	fmt.Println(res.Path, res.Score)
	// Output: [0 1 2] 30
}
