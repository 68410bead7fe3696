package mn_test

import (
	"fmt"

	"github.com/katalvlaran/schur/mn"
	"github.com/katalvlaran/schur/young"
)

// ExampleCharacter evaluates the standard representation of S_5 on a
// 3-cycle: χ^{(4,1)}_{(3,1,1)} = 1.
func ExampleCharacter() {
	v, err := mn.Character(young.Partition{4, 1}, young.Partition{3, 1, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v)
	// Output:
	// 1
}

// ExampleEvaluator shows an isolated, resettable cache: the sign
// character of S_4 on a 4-cycle is (-1)^3 = -1.
func ExampleEvaluator() {
	e := mn.NewEvaluator()

	v, err := e.Character(young.Partition{1, 1, 1, 1}, young.Partition{4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v, e.CacheLen() > 1)

	e.Reset()
	fmt.Println(e.CacheLen())
	// Output:
	// -1 true
	// 1
}
