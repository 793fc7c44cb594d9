package core_test

import (
	"fmt"

	"github.com/katalvlaran/mfbench/core"
)

// ExampleNewInterval shows the validated constructor rejecting inverted bounds.
func ExampleNewInterval() {
	if _, ok := core.NewInterval(1, -1); !ok {
		fmt.Println("rejected")
	}
	iv, _ := core.NewInterval(-32, 32)
	d := core.Uniform(2, iv)
	fmt.Println(d, d.MinCorner())
	// Output:
	// rejected
	// [-32, 32] × [-32, 32] [-32 -32]
}
