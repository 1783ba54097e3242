package fetch_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/boxpad/boxpad-api/fetch"
)

func TestLoadSuccess(t *testing.T) {
	l := fetch.NewLoader(func(ctx context.Context) (string, error) {
		return "hello", nil
	})
	l.Load("a")

	res := l.Wait(context.Background())
	assert.False(t, res.Loading)
	assert.True(t, res.Loaded)
	assert.Empty(t, res.Err)
	assert.Equal(t, "hello", res.Data)
}

func TestLoadFailure(t *testing.T) {
	l := fetch.NewLoader(func(ctx context.Context) (string, error) {
		return "", errors.New("failed to fetch users")
	})
	l.Load("a")

	res := l.Wait(context.Background())
	assert.False(t, res.Loading)
	assert.False(t, res.Loaded)
	assert.Equal(t, "failed to fetch users", res.Err)
	assert.Empty(t, res.Data)
}

func TestReloadAfterFailureClearsError(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	l := fetch.NewLoader(func(ctx context.Context) (string, error) {
		if fail.Load() {
			return "", errors.New("failed to fetch users")
		}
		return "recovered", nil
	})

	l.Load("a")
	res := l.Wait(context.Background())
	assert.NotEmpty(t, res.Err)

	fail.Store(false)
	l.Reload()
	res = l.Wait(context.Background())
	assert.Empty(t, res.Err)
	assert.Equal(t, "recovered", res.Data)
}

func TestRefreshFailureKeepsPreviousData(t *testing.T) {
	var fail atomic.Bool
	l := fetch.NewLoader(func(ctx context.Context) (string, error) {
		if fail.Load() {
			return "", errors.New("failed to fetch users")
		}
		return "first", nil
	})

	l.Load("a")
	l.Wait(context.Background())

	fail.Store(true)
	l.Reload()
	res := l.Wait(context.Background())

	assert.Equal(t, "failed to fetch users", res.Err)
	assert.True(t, res.Loaded)
	assert.Equal(t, "first", res.Data, "stale data stays visible on refresh failure")
}

func TestSameKeyDoesNotRerun(t *testing.T) {
	var calls atomic.Int32
	l := fetch.NewLoader(func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	l.Load("a")
	l.Wait(context.Background())
	l.Load("a")
	l.Load("a")
	res := l.Wait(context.Background())

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, res.Data)
}

func TestKeyChangeReruns(t *testing.T) {
	var calls atomic.Int32
	l := fetch.NewLoader(func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	l.Load("a")
	l.Wait(context.Background())
	l.Load("b")
	res := l.Wait(context.Background())

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 2, res.Data)
}

// A slow invocation for key "a" must not overwrite the result of the
// invocation for key "b" started while "a" was still in flight.
func TestStaleResponseDiscarded(t *testing.T) {
	aStarted := make(chan struct{})
	releaseA := make(chan struct{})
	var calls atomic.Int32
	var wg sync.WaitGroup
	wg.Add(2)

	l := fetch.NewLoader(func(ctx context.Context) (string, error) {
		defer wg.Done()
		if calls.Add(1) == 1 {
			close(aStarted)
			<-releaseA
			return "A", nil
		}
		return "B", nil
	})

	l.Load("a")
	<-aStarted
	l.Load("b") // supersedes "a" while it is blocked

	res := l.Wait(context.Background())
	assert.Equal(t, "B", res.Data)

	close(releaseA)
	wg.Wait() // the stale "a" invocation has now fully returned

	res = l.Snapshot()
	assert.Equal(t, "B", res.Data, "late resolution of the stale invocation must be dropped")
	assert.Empty(t, res.Err)
}

func TestCloseBarsLateCommit(t *testing.T) {
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	l := fetch.NewLoader(func(ctx context.Context) (string, error) {
		defer wg.Done()
		<-release
		return "late", nil
	})

	l.Load("a")
	l.Close()
	close(release)
	wg.Wait()

	res := l.Snapshot()
	assert.False(t, res.Loaded)
	assert.Empty(t, res.Data, "no state mutation after teardown")
}

func TestCloseCancelsInflightContext(t *testing.T) {
	canceled := make(chan struct{})
	l := fetch.NewLoader(func(ctx context.Context) (string, error) {
		<-ctx.Done()
		close(canceled)
		return "", ctx.Err()
	})

	l.Load("a")
	l.Close()

	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("producer context was not canceled on Close")
	}
}

func TestLoadAfterCloseIsNoop(t *testing.T) {
	var calls atomic.Int32
	l := fetch.NewLoader(func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	l.Close()
	l.Load("a")
	l.Reload()

	assert.Equal(t, int32(0), calls.Load())
}

func TestWaitHonorsContext(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	l := fetch.NewLoader(func(ctx context.Context) (string, error) {
		<-block
		return "", nil
	})
	l.Load("a")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	res := l.Wait(ctx)

	assert.True(t, res.Loading)
}
