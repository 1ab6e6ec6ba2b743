package sampling_test

import (
	"fmt"

	"github.com/signalscope/signalscope/sampling"
)

// ExamplePCM quantizes a 2 Hz sine to 16 levels at 10 samples/s and prints
// the first few level indices.
func ExamplePCM() {
	res, err := sampling.PCM(2, 1, sampling.PCMConfig{SamplingRate: 10, QuantizationLevels: 16})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, p := range res.Transmitted[:5] {
		fmt.Printf("t=%.1f level=%g\n", p.X, p.Y)
	}
	// Output:
	// t=0.0 level=8
	// t=0.1 level=15
	// t=0.2 level=12
	// t=0.3 level=3
	// t=0.4 level=0
}
