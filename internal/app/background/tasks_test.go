package background

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/usecase/request"
	"github.com/stretchr/testify/assert"
)

// sweepStub counts sweep calls; the embedded interface covers the
// methods the sweeper never touches.
type sweepStub struct {
	request.ExchangeUsecase
	dueCalls  int32
	waitCalls int32
}

func (s *sweepStub) ExpireDueRequests(ctx context.Context) error {
	atomic.AddInt32(&s.dueCalls, 1)
	return nil
}

func (s *sweepStub) ExpireStaleWaiting(ctx context.Context) error {
	atomic.AddInt32(&s.waitCalls, 1)
	return nil
}

func TestExpirationSweepRunsBothPasses(t *testing.T) {
	stub := &sweepStub{}
	tasks := NewBackgroundTasks(stub, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	tasks.StartAll(ctx)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&stub.dueCalls) >= 2 && atomic.LoadInt32(&stub.waitCalls) >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	due := atomic.LoadInt32(&stub.dueCalls)

	// No more ticks after cancellation
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, due, atomic.LoadInt32(&stub.dueCalls))
}
