package measure_test

import (
	"fmt"
	"time"

	"github.com/jonwraymond/resizekit/measure"
)

func ExampleManager_StartObserving() {
	mgr := measure.NewManager(measure.ManagerConfig{})
	defer mgr.Close()

	target := measure.NewTargetFunc("#chart", func() (measure.Size, error) {
		return measure.Size{Width: 640, Height: 480}, nil
	})

	session, err := mgr.StartObserving(target, measure.DefaultSessionConfig())
	if err != nil {
		fmt.Println("observe failed:", err)
		return
	}
	defer session.Stop()

	m := session.Measurement()
	fmt.Printf("ready=%v size=%.0fx%.0f attempts=%d\n", m.Ready, m.Width, m.Height, session.Attempts())
	// Output:
	// ready=true size=640x480 attempts=1
}

func ExampleSessionConfig() {
	mgr := measure.NewManager(measure.ManagerConfig{})
	defer mgr.Close()

	// A hidden panel keeps measuring zero; the session exhausts its
	// retries and is forced ready so rendering is never blocked.
	hidden := measure.NewTargetFunc("#hidden-panel", func() (measure.Size, error) {
		return measure.Size{}, nil
	})

	session, err := mgr.StartObserving(hidden, measure.SessionConfig{
		RetryDelay: time.Millisecond,
		MaxRetries: 2,
	})
	if err != nil {
		fmt.Println("observe failed:", err)
		return
	}
	defer session.Stop()

	for !session.Measurement().Ready {
		time.Sleep(time.Millisecond)
	}
	fmt.Println("degenerate:", session.Degenerate())
	// Output:
	// degenerate: true
}
