package young_test

import (
	"fmt"

	"github.com/katalvlaran/schur/young"
)

// ExamplePartition_Conjugate transposes the diagram of (4,2,1):
//
//	■ ■ ■ ■          ■ ■ ■
//	■ ■        →     ■ ■
//	■                ■
//	                 ■
func ExamplePartition_Conjugate() {
	p := young.Partition{4, 2, 1}
	fmt.Println(p.Conjugate())
	// Output:
	// (3,2,1,1)
}

// ExampleDimension computes the dimension of the irreducible
// representation of S_5 labeled by (3,2): there are exactly five
// standard Young tableaux of that shape.
func ExampleDimension() {
	fmt.Println(young.Dimension(young.Partition{3, 2}))
	// Output:
	// 5
}
