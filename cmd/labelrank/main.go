// Command labelrank runs the LabelRank community-detection kernel against a
// Matrix-Market graph file and prints the discovered membership along with
// a modularity score and timing.
package main

import "github.com/katalvlaran/labelrank/cmd/labelrank/cmd"

func main() {
	cmd.Execute()
}
