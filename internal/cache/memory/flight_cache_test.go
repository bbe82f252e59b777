package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock — управляемые часы для проверки TTL.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

// blockingFetch — загрузка, которая ждёт release; считает вызовы.
type blockingFetch struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	value   string
	err     error
	once    sync.Once
}

func newBlockingFetch(value string, err error) *blockingFetch {
	return &blockingFetch{
		started: make(chan struct{}),
		release: make(chan struct{}),
		value:   value,
		err:     err,
	}
}

func (b *blockingFetch) fetch(context.Context) (string, error) {
	b.calls.Add(1)
	b.once.Do(func() { close(b.started) })
	<-b.release
	return b.value, b.err
}

func waitStarted(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatalf("fetch did not start")
	}
}

// runConcurrent — n одновременных Get по одному ключу; возвращает значения и ошибки.
func runConcurrent(c *FlightCache[string], key string, n int, fetch func(context.Context) (string, error)) ([]string, []error) {
	var wg sync.WaitGroup
	values := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			values[i], errs[i] = c.Get(context.Background(), key, fetch)
		}(i)
	}
	wg.Wait()
	return values, errs
}

func TestGet_ConcurrentMisses_SingleFetch(t *testing.T) {
	c := NewFlightCache[string]("test", 0)
	bf := newBlockingFetch("branch-1", nil)

	done := make(chan struct{})
	var values []string
	var errs []error
	go func() {
		values, errs = runConcurrent(c, "b1", 50, bf.fetch)
		close(done)
	}()

	waitStarted(t, bf.started)
	time.Sleep(20 * time.Millisecond) // даём остальным присоединиться
	close(bf.release)
	<-done

	if got := bf.calls.Load(); got != 1 {
		t.Fatalf("expected exactly 1 fetch, got %d", got)
	}
	for i := range values {
		if errs[i] != nil || values[i] != "branch-1" {
			t.Fatalf("caller %d: value=%q err=%v", i, values[i], errs[i])
		}
	}

	// Повторный Get обслуживается из кэша.
	v, err := c.Get(context.Background(), "b1", func(context.Context) (string, error) {
		t.Fatalf("fetch must not be called on hit")
		return "", nil
	})
	if err != nil || v != "branch-1" {
		t.Fatalf("expected hit, got value=%q err=%v", v, err)
	}
}

func TestGet_FetchError_PropagatesToAllAndRetries(t *testing.T) {
	c := NewFlightCache[string]("test", 0)
	fetchErr := errors.New("db down")
	bf := newBlockingFetch("", fetchErr)

	done := make(chan struct{})
	var errs []error
	go func() {
		_, errs = runConcurrent(c, "b1", 20, bf.fetch)
		close(done)
	}()

	waitStarted(t, bf.started)
	time.Sleep(20 * time.Millisecond)
	close(bf.release)
	<-done

	if got := bf.calls.Load(); got != 1 {
		t.Fatalf("expected exactly 1 fetch, got %d", got)
	}
	for i, err := range errs {
		if !errors.Is(err, fetchErr) {
			t.Fatalf("caller %d: want fetch error, got %v", i, err)
		}
	}
	if c.Len() != 0 {
		t.Fatalf("error must not be cached, len=%d", c.Len())
	}

	// Отметка о загрузке снята — следующий вызов загружает заново.
	var calls atomic.Int32
	v, err := c.Get(context.Background(), "b1", func(context.Context) (string, error) {
		calls.Add(1)
		return "recovered", nil
	})
	if err != nil || v != "recovered" || calls.Load() != 1 {
		t.Fatalf("expected retry fetch, got value=%q err=%v calls=%d", v, err, calls.Load())
	}
}

func TestSeed_ServedWithoutFetch(t *testing.T) {
	c := NewFlightCache[string]("test", 0)
	c.Seed("b1", "seeded")

	v, err := c.Get(context.Background(), "b1", func(context.Context) (string, error) {
		t.Fatalf("fetch must not be called after Seed")
		return "", nil
	})
	if err != nil || v != "seeded" {
		t.Fatalf("want seeded value, got %q err=%v", v, err)
	}
}

func TestClear_TriggersFreshFetch(t *testing.T) {
	c := NewFlightCache[string]("test", 0)
	var calls atomic.Int32
	fetch := func(context.Context) (string, error) {
		calls.Add(1)
		return "v", nil
	}

	if _, err := c.Get(context.Background(), "b1", fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after Clear, len=%d", c.Len())
	}
	if _, err := c.Get(context.Background(), "b1", fetch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 fetches (before and after Clear), got %d", calls.Load())
	}
}

func TestForget_OnlyThatKey(t *testing.T) {
	c := NewFlightCache[string]("test", 0)
	c.Seed("a", "A")
	c.Seed("b", "B")

	c.Forget("a")

	var calls atomic.Int32
	fetch := func(context.Context) (string, error) {
		calls.Add(1)
		return "A2", nil
	}
	if v, _ := c.Get(context.Background(), "a", fetch); v != "A2" {
		t.Fatalf("want refetched A2, got %q", v)
	}
	if v, _ := c.Get(context.Background(), "b", fetch); v != "B" {
		t.Fatalf("want B from cache, got %q", v)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 fetch, got %d", calls.Load())
	}
}

func TestClear_DuringInFlight_ResultNotStored(t *testing.T) {
	c := NewFlightCache[string]("test", 0)
	bf := newBlockingFetch("stale", nil)

	resCh := make(chan string, 1)
	go func() {
		v, _ := c.Get(context.Background(), "b1", bf.fetch)
		resCh <- v
	}()

	waitStarted(t, bf.started)
	c.Clear()
	close(bf.release)

	// Ожидающий получает результат своей загрузки...
	if v := <-resCh; v != "stale" {
		t.Fatalf("waiter must receive its fetch result, got %q", v)
	}
	// ...но в кэш он не попадает.
	if c.Len() != 0 {
		t.Fatalf("invalidated fetch must not populate cache, len=%d", c.Len())
	}

	var calls atomic.Int32
	v, _ := c.Get(context.Background(), "b1", func(context.Context) (string, error) {
		calls.Add(1)
		return "fresh", nil
	})
	if v != "fresh" || calls.Load() != 1 {
		t.Fatalf("want fresh fetch after Clear, got %q calls=%d", v, calls.Load())
	}
}

func TestSeed_DuringInFlight_SeededValueWins(t *testing.T) {
	c := NewFlightCache[string]("test", 0)
	bf := newBlockingFetch("v1-stale", nil)

	resCh := make(chan string, 1)
	go func() {
		v, _ := c.Get(context.Background(), "b1", bf.fetch)
		resCh <- v
	}()

	waitStarted(t, bf.started)
	c.Seed("b1", "v2-fresh")
	close(bf.release)

	if v := <-resCh; v != "v1-stale" {
		t.Fatalf("waiter must receive its fetch result, got %q", v)
	}

	v, err := c.Get(context.Background(), "b1", func(context.Context) (string, error) {
		t.Fatalf("fetch must not be called: seeded value is cached")
		return "", nil
	})
	if err != nil || v != "v2-fresh" {
		t.Fatalf("older fetch overwrote seeded value: got %q err=%v", v, err)
	}
}

func TestForget_DuringInFlight_OtherKeyStillStored(t *testing.T) {
	c := NewFlightCache[string]("test", 0)
	bf := newBlockingFetch("B", nil)

	resCh := make(chan string, 1)
	go func() {
		v, _ := c.Get(context.Background(), "b", bf.fetch)
		resCh <- v
	}()

	waitStarted(t, bf.started)
	c.Forget("a")
	close(bf.release)
	<-resCh

	v, _ := c.Get(context.Background(), "b", func(context.Context) (string, error) {
		t.Fatalf("fetch for b must not repeat after Forget(a)")
		return "", nil
	})
	if v != "B" {
		t.Fatalf("want B from cache, got %q", v)
	}
}

func TestForget_DuringInFlight_SameKeyNotStored(t *testing.T) {
	c := NewFlightCache[string]("test", 0)
	bf := newBlockingFetch("stale", nil)

	resCh := make(chan string, 1)
	go func() {
		v, _ := c.Get(context.Background(), "b1", bf.fetch)
		resCh <- v
	}()

	waitStarted(t, bf.started)
	c.Forget("b1")
	close(bf.release)
	<-resCh

	if c.Len() != 0 {
		t.Fatalf("forgotten key must not be repopulated by older fetch, len=%d", c.Len())
	}
}

func TestSeedIf_KeepsCurrentWhenReplaceRejects(t *testing.T) {
	c := NewFlightCache[int]("test", 0)
	newer := func(cur int) bool { return cur < 5 }

	if !c.SeedIf("k", 5, newer) {
		t.Fatalf("empty key must accept seed")
	}
	if c.SeedIf("k", 3, func(cur int) bool { return cur < 3 }) {
		t.Fatalf("older value must be rejected")
	}
	if !c.SeedIf("k", 7, func(cur int) bool { return cur < 7 }) {
		t.Fatalf("newer value must be accepted")
	}

	v, _ := c.Get(context.Background(), "k", func(context.Context) (int, error) {
		t.Fatalf("fetch must not be called")
		return 0, nil
	})
	if v != 7 {
		t.Fatalf("want 7, got %d", v)
	}
}

func TestGet_CallerCancel_DoesNotAbortSharedFetch(t *testing.T) {
	c := NewFlightCache[string]("test", 0)

	var fetchCtxErr atomic.Value
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (string, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			fetchCtxErr.Store(err)
		}
		return "shared", nil
	}

	callerCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Get(callerCtx, "b1", fetch)
		firstErr <- err
	}()
	waitStarted(t, started)

	secondRes := make(chan string, 1)
	go func() {
		v, _ := c.Get(context.Background(), "b1", fetch)
		secondRes <- v
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled caller must get context.Canceled, got %v", err)
	}

	close(release)
	if v := <-secondRes; v != "shared" {
		t.Fatalf("other waiter must get shared result, got %q", v)
	}
	if err := fetchCtxErr.Load(); err != nil {
		t.Fatalf("shared fetch context must not be cancelled, got %v", err)
	}
}

func TestGet_DifferentKeysDoNotBlock(t *testing.T) {
	c := NewFlightCache[string]("test", 0)
	bf := newBlockingFetch("slow", nil)
	defer close(bf.release)

	go func() { _, _ = c.Get(context.Background(), "slow", bf.fetch) }()
	waitStarted(t, bf.started)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	v, err := c.Get(ctx, "fast", func(context.Context) (string, error) { return "fast", nil })
	if err != nil || v != "fast" {
		t.Fatalf("unrelated key must not wait, got %q err=%v", v, err)
	}
}

func TestTTL_ExpiryRefetchesOnceUnderConcurrency(t *testing.T) {
	clock := newFakeClock()
	c := NewFlightCache[string]("test-ttl", 15*time.Minute, WithClock(clock.Now))

	var calls atomic.Int32
	fetch := func(context.Context) (string, error) {
		n := calls.Add(1)
		time.Sleep(10 * time.Millisecond)
		if n == 1 {
			return "sunny", nil
		}
		return "rain", nil
	}

	if v, _ := c.Get(context.Background(), "berlin", fetch); v != "sunny" {
		t.Fatalf("want sunny, got %q", v)
	}

	// До истечения TTL — попадание.
	clock.Advance(14 * time.Minute)
	if v, _ := c.Get(context.Background(), "berlin", fetch); v != "sunny" || calls.Load() != 1 {
		t.Fatalf("want cached sunny before TTL, got %q calls=%d", v, calls.Load())
	}

	// После TTL — ровно одна перезагрузка на всех.
	clock.Advance(2 * time.Minute)
	values, errs := runConcurrent(c, "berlin", 30, fetch)
	if calls.Load() != 2 {
		t.Fatalf("expected exactly one re-fetch after TTL, total calls=%d", calls.Load())
	}
	for i := range values {
		if errs[i] != nil || values[i] != "rain" {
			t.Fatalf("caller %d: value=%q err=%v", i, values[i], errs[i])
		}
	}
}

func TestTTL_ZeroMeansNoExpiry(t *testing.T) {
	clock := newFakeClock()
	c := NewFlightCache[string]("test", 0, WithClock(clock.Now))
	c.Seed("b1", "v")

	clock.Advance(24 * 365 * time.Hour)
	v, err := c.Get(context.Background(), "b1", func(context.Context) (string, error) {
		t.Fatalf("fetch must not be called without TTL")
		return "", nil
	})
	if err != nil || v != "v" {
		t.Fatalf("want v, got %q err=%v", v, err)
	}
}
