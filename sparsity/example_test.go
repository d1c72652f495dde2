package sparsity_test

import (
	"fmt"

	"github.com/katalvlaran/sparsekit/comm"
	"github.com/katalvlaran/sparsekit/indexmap"
	"github.com/katalvlaran/sparsekit/sparsity"
)

// ExampleNew builds the tridiagonal pattern of a 4×4 matrix on a
// single rank and dumps it.
func ExampleNew() {
	rowMap, _ := indexmap.New(0, []int64{4}, nil, 1)
	colMap, _ := indexmap.New(0, []int64{4}, nil, 1)
	sp, _ := sparsity.New(comm.Self{}, rowMap, colMap)

	for i := int64(0); i < 4; i++ {
		cols := []int64{i}
		if i > 0 {
			cols = append(cols, i-1)
		}
		if i < 3 {
			cols = append(cols, i+1)
		}
		_ = sp.InsertGlobal([]int64{i}, cols)
	}
	_ = sp.Apply()

	fmt.Print(sp.String())
	fmt.Println("nnz:", sp.NumNonzeros())
	// Output:
	// Row 0: 0 1
	// Row 1: 0 1 2
	// Row 2: 1 2 3
	// Row 3: 2 3
	// nnz: 10
}

// ExampleMerge assembles a 1×2 block grid into one 2×4 pattern with
// renumbered columns.
func ExampleMerge() {
	rowMap, _ := indexmap.New(0, []int64{2}, nil, 1)
	colMap, _ := indexmap.New(0, []int64{2}, nil, 1)

	left, _ := sparsity.New(comm.Self{}, rowMap, colMap)
	right, _ := sparsity.New(comm.Self{}, rowMap, colMap)
	_ = left.InsertGlobal([]int64{0}, []int64{1})
	_ = right.InsertGlobal([]int64{0}, []int64{0})
	_ = left.Apply()
	_ = right.Apply()

	merged, _ := sparsity.Merge(comm.Self{}, [][]*sparsity.Pattern{{left, right}})
	fmt.Print(merged.String())
	// Output:
	// Row 0: 1 2
	// Row 1:
}
