package ethereum

import (
	"context"
)

// Throttle bounds the number of in-flight calls against one RPC endpoint.
type Throttle struct {
	tokens chan int
}

func NewThrottle(n int) *Throttle {
	if n <= 0 {
		n = 1
	}
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &Throttle{
		tokens: tokens,
	}
}

// Acquire blocks until a token is free or ctx is done. The returned release
// func must be called exactly once.
func (t *Throttle) Acquire(ctx context.Context) (release func(), err error) {
	select {
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case token := <-t.tokens:
		return func() { t.tokens <- token }, nil
	}
}

// InFlight reports how many tokens are currently taken.
func (t *Throttle) InFlight() int {
	return cap(t.tokens) - len(t.tokens)
}
