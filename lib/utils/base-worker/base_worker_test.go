package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestBaseWorker(t *testing.T) {
	t.Run(`runs until context is done and survives panics`, func(t *testing.T) {
		var runs int32
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		worker := NewInstance("test", time.Millisecond, time.Millisecond)
		go func() {
			worker.Run(ctx, func(ctx context.Context) error {
				switch atomic.AddInt32(&runs, 1) {
				case 1:
					panic("boom")
				case 2:
					return errors.New("failed")
				case 3:
					cancel()
				}
				return nil
			})
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("worker did not stop")
		}
		require.GreaterOrEqual(t, atomic.LoadInt32(&runs), int32(3))
	})
}
