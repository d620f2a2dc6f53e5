package datafetchers

import (
	"errors"
	"sync"
	"time"
)

// Fetcher is an interface that provides a method to get a value.
type Fetcher[T any] interface {
	Get() (T, time.Time, error)
	GetRefetchInterval() time.Duration
}

// IntervalFetcher is a struct that prefetches a value at a given interval
// and provides a method to get the latest value.
// NOTE: It may return stale data if the update function takes longer than the interval.
type IntervalFetcher[T any] struct {
	updateFn  func() (T, error)
	interval  time.Duration
	hasClosed bool

	lastRetrievedTime time.Time
	cache             T
	mutex             sync.RWMutex

	firstResult     chan struct{}
	firstResultOnce sync.Once
	quit            chan struct{}
	closeOnce       sync.Once
}

var _ Fetcher[uint64] = (*IntervalFetcher[uint64])(nil)

// NewIntervalFetcher starts prefetching in the background. The first fetch
// happens immediately.
func NewIntervalFetcher[T any](updateFn func() (T, error), interval time.Duration) *IntervalFetcher[T] {
	if interval <= 0 {
		panic("interval must be greater than 0")
	}
	prefetcher := &IntervalFetcher[T]{
		updateFn:    updateFn,
		interval:    interval,
		firstResult: make(chan struct{}),
		quit:        make(chan struct{}),
	}

	go prefetcher.startTimer()

	return prefetcher
}

func (p *IntervalFetcher[T]) startTimer() {
	p.prefetch()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.prefetch()
		case <-p.quit:
			return
		}
	}
}

func (p *IntervalFetcher[T]) prefetch() {
	newValue, err := p.updateFn()
	if err != nil {
		// By silently skipping the error, the values would become stale,
		// signaling that to the client.
		return
	}

	p.mutex.Lock()
	p.lastRetrievedTime = time.Now()
	p.cache = newValue
	p.mutex.Unlock()

	p.firstResultOnce.Do(func() { close(p.firstResult) })
}

// Get returns the latest value and the time it was last retrieved.
// If no value has ever been retrieved, it returns the zero value of T and time.Time{}.
// If the fetcher has been closed, it returns the zero value of T and time.Time{}.
func (p *IntervalFetcher[T]) Get() (T, time.Time, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	if p.lastRetrievedTime.IsZero() {
		return p.cache, time.Time{}, errors.New("no cached value has ever been retrieved")
	}
	if p.hasClosed {
		var zero T
		return zero, time.Time{}, errors.New("prefetcher has been closed")
	}

	return p.cache, p.lastRetrievedTime, nil
}

// WaitUntilFirstResult blocks until the first successful fetch completes
// or the fetcher is closed.
func (p *IntervalFetcher[T]) WaitUntilFirstResult() {
	select {
	case <-p.firstResult:
	case <-p.quit:
	}
}

// Close stops the background refetching. Safe to call more than once.
func (p *IntervalFetcher[T]) Close() {
	p.closeOnce.Do(func() {
		p.mutex.Lock()
		p.hasClosed = true
		p.mutex.Unlock()

		close(p.quit)
	})
}

func (p *IntervalFetcher[T]) GetRefetchInterval() time.Duration {
	return p.interval
}

