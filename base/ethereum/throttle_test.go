package ethereum

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThrottle(t *testing.T) {
	req := require.New(t)
	th := NewThrottle(1)

	release, err := th.Acquire(context.Background())
	req.NoError(err)
	req.Equal(1, th.InFlight())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = th.Acquire(ctx)
	req.Equal(context.DeadlineExceeded, err)

	release()
	req.Equal(0, th.InFlight())

	release, err = th.Acquire(context.Background())
	req.NoError(err)
	release()
}
