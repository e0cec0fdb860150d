package contain_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonwraymond/resizekit/contain"
)

func ExampleBenign() {
	fmt.Println(contain.Benign("ResizeObserver loop completed with undelivered notifications."))
	fmt.Println(contain.Benign(errors.New("TypeError: x is not a function")))
	fmt.Println(contain.Benign(nil))
	// Output:
	// true
	// false
	// false
}

func ExampleNewBoundary() {
	boundary := contain.NewBoundary(nil)

	renders := 0
	err := boundary.Render(context.Background(), func(ctx context.Context) error {
		renders++
		if renders == 1 {
			// The platform's loop cutoff fires mid-render.
			panic("ResizeObserver loop limit exceeded")
		}
		return nil
	})

	fmt.Println("error:", err)
	fmt.Println("renders:", renders)
	// Output:
	// error: <nil>
	// renders: 2
}

func ExampleInstall() {
	// Bootstrap paths may all call Install; only the first has any effect.
	contain.Install()
	contain.Install()

	fmt.Println("installed:", contain.Installed())
	// Output:
	// installed: true
}
