package labelrank_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labelrank/graph"
	"github.com/katalvlaran/labelrank/labelrank"
)

func ExampleRun() {
	g, _ := graph.DisjointCliques([]int{3, 3}, 1)

	opts := labelrank.DefaultOptions()
	opts.Repeat = 1
	res, err := labelrank.Run(context.Background(), g, opts)
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Membership[0] == res.Membership[1])
	fmt.Println(res.Membership[0] != res.Membership[3])
	// Output:
	// true
	// true
}
