package analogmod_test

import (
	"fmt"

	"github.com/signalscope/signalscope/analogmod"
)

// ExampleModulate amplitude-modulates a 5 Hz message onto its 25 Hz carrier
// and prints the sample where both message and carrier peak: the envelope
// reaches 1 + 0.8 there.
func ExampleModulate() {
	res, err := analogmod.Modulate(5, 1, analogmod.AM)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("points=%d\n", len(res.Transmitted))
	for _, i := range []int{0, 10} {
		p := res.Transmitted[i]
		fmt.Printf("t=%.2f y=%.2f\n", p.X, p.Y)
	}
	// Output:
	// points=400
	// t=0.00 y=0.00
	// t=0.05 y=1.80
}
