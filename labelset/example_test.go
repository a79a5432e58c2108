package labelset_test

import (
	"fmt"

	"github.com/katalvlaran/labelrank/labelset"
)

func ExampleAccumulator_CopyTo() {
	acc := labelset.NewAccumulator()
	acc.Set(10, 1)
	acc.Set(11, 4)
	acc.Set(12, 2)
	acc.Reorder()

	var b labelset.Bounded
	acc.CopyTo(&b)
	b.MultiplyPow(1.0/b.Sum(), 1.5)

	label, _ := b.Label0()
	fmt.Println(label)
	// Output: 11
}
