package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mtrlerrors "github.com/go-mtrl/mtrl/pkg/errors"
)

func runIdle(t *testing.T, l *Loop) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, l.RunUntilIdle(ctx))
}

func queued(l *Loop) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func TestLoopTimer_Stop(t *testing.T) {
	tests := []struct {
		name string
		// prepare brings the timer into the state under test.
		prepare  func(t *testing.T, l *Loop)
		delay    time.Duration
		wantStop bool
		wantRan  bool
	}{
		{
			name:     "before fire",
			prepare:  func(*testing.T, *Loop) {},
			delay:    time.Hour,
			wantStop: true,
		},
		{
			name: "after enqueue",
			prepare: func(t *testing.T, l *Loop) {
				require.Eventually(t, func() bool { return queued(l) == 1 }, 5*time.Second, time.Millisecond)
			},
			delay:    time.Millisecond,
			wantStop: true,
		},
		{
			name:     "after run",
			prepare:  runIdle,
			delay:    time.Millisecond,
			wantStop: false,
			wantRan:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoop(0)
			var ran atomic.Bool
			timer := l.AfterFunc(tt.delay, func() { ran.Store(true) })
			assert.Equal(t, 1, l.Pending())

			tt.prepare(t, l)

			assert.Equal(t, tt.wantStop, timer.Stop())
			assert.False(t, timer.Stop(), "second Stop")
			runIdle(t, l)
			assert.Equal(t, tt.wantRan, ran.Load())
			assert.Equal(t, 0, l.Pending())
			assert.Equal(t, 0, queued(l))
		})
	}
}

func TestLoop_RunUntilIdleWaitsForChainedTimers(t *testing.T) {
	l := NewLoop(0)
	var order []int
	l.AfterFunc(time.Millisecond, func() {
		order = append(order, 1)
		l.AfterFunc(time.Millisecond, func() {
			order = append(order, 2)
			l.RequestFrame(func() { order = append(order, 3) })
		})
	})

	runIdle(t, l)
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, l.Pending())
}

func TestLoop_RunUntilIdleHonoursContext(t *testing.T) {
	l := NewLoop(0)
	timer := l.AfterFunc(time.Hour, func() {})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, l.RunUntilIdle(ctx), context.DeadlineExceeded)

	timer.Stop()
	runIdle(t, l)
}

func TestLoop_EnqueueDoesNotBlockWhenIdle(t *testing.T) {
	l := NewLoop(4)
	ran := 0
	const timers = 200
	for range timers {
		l.AfterFunc(time.Millisecond, func() { ran++ })
	}

	// Nothing drains the queue, yet every timer gets to enqueue.
	require.Eventually(t, func() bool { return queued(l) == timers }, 5*time.Second, time.Millisecond)

	runIdle(t, l)
	assert.Equal(t, timers, ran)
}

func TestLoop_DispatchFromOtherGoroutines(t *testing.T) {
	l := NewLoop(0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const workers = 50
	count := 0
	done := make(chan struct{})
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Dispatch(func() {
				// Runs on the loop goroutine only, so no lock.
				count++
				if count == workers {
					close(done)
				}
			})
		}()
	}
	wg.Wait()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatched callbacks did not run")
	}
	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.Equal(t, 0, l.Pending())
	assert.False(t, l.Dispatch(nil))
}

type panicRecorder struct {
	mu     sync.Mutex
	panics []*mtrlerrors.PanicError
}

func (r *panicRecorder) HandleError(*mtrlerrors.ComponentError)     {}
func (r *panicRecorder) HandleCreateError(*mtrlerrors.CreateError) {}
func (r *panicRecorder) HandlePanic(err *mtrlerrors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

func TestLoop_RecoversPanickingCallbacks(t *testing.T) {
	rec := &panicRecorder{}
	mtrlerrors.SetHandler(rec)
	t.Cleanup(func() { mtrlerrors.SetHandler(nil) })

	l := NewLoop(0)
	after := false
	l.Dispatch(func() { panic("boom") })
	l.AfterFunc(time.Millisecond, func() { after = true })

	runIdle(t, l)
	assert.True(t, after, "loop kept running after the panic")
	assert.Equal(t, 0, l.Pending())
	require.Len(t, rec.panics, 1)
	assert.Equal(t, "schedule.callback", rec.panics[0].Op)
	assert.Equal(t, "boom", rec.panics[0].Value)
}
