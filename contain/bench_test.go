package contain

import (
	"context"
	"errors"
	"testing"
)

func BenchmarkBenign_Match(b *testing.B) {
	msg := "ResizeObserver loop completed with undelivered notifications."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Benign(msg)
	}
}

func BenchmarkBenign_NoMatch(b *testing.B) {
	err := errors.New("TypeError: x is not a function")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Benign(err)
	}
}

func BenchmarkBoundary_CleanRender(b *testing.B) {
	boundary := NewBoundary(nil)
	ctx := context.Background()
	render := func(ctx context.Context) error { return nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = boundary.Render(ctx, render)
	}
}

func BenchmarkConsoleWarn_Suppressed(b *testing.B) {
	resetGuard()
	SetConsole(func(args ...any) {}, func(args ...any) {})
	Install()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ConsoleWarn("ResizeObserver loop limit exceeded")
	}
}
