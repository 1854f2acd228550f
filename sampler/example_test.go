package sampler_test

import (
	"fmt"

	"github.com/katalvlaran/gaeval/sampler"
)

// ExampleNewBalanced builds the sampler once and resamples negatives on
// every call, e.g. once per training epoch.
func ExampleNewBalanced() {
	b, err := sampler.NewBalanced([]float64{1, 0, 1, 0, 0, 0}, sampler.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	for epoch := 0; epoch < 2; epoch++ {
		idx := b.Sample()
		fmt.Println(len(idx), idx[:2])
	}
	// Output:
	// 4 [0 2]
	// 4 [0 2]
}
