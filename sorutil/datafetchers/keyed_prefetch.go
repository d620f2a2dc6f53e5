package datafetchers

import (
	"errors"
	"fmt"
	"time"
)

// ErrKeyNotFound is returned when the latest snapshot holds no value for a key.
var ErrKeyNotFound = errors.New("key not found in the latest snapshot")

// StaleSnapshotError is returned when the latest snapshot is older than allowed.
type StaleSnapshotError struct {
	Age    time.Duration
	MaxAge time.Duration
}

func (e StaleSnapshotError) Error() string {
	return fmt.Sprintf("snapshot is %s old, max age is %s", e.Age, e.MaxAge)
}

// KeyedFetcher serves single entries out of a periodically refreshed map.
type KeyedFetcher[K comparable, V any] interface {
	Fetcher[map[K]V]

	// Lookup returns the value for key from a snapshot that is not stale.
	Lookup(key K) (V, error)
}

// KeyedIntervalFetcher refreshes a whole map every interval, for example the
// gas price of every chain in one pass, and serves it entry by entry.
type KeyedIntervalFetcher[K comparable, V any] struct {
	*IntervalFetcher[map[K]V]

	maxAge time.Duration
}

var _ KeyedFetcher[string, uint64] = (*KeyedIntervalFetcher[string, uint64])(nil)

// NewKeyedFetcher starts refreshing in the background. Snapshots older than
// maxAge are not served.
func NewKeyedFetcher[K comparable, V any](updateFn func() (map[K]V, error), interval, maxAge time.Duration) *KeyedIntervalFetcher[K, V] {
	if maxAge < interval {
		maxAge = interval
	}

	return &KeyedIntervalFetcher[K, V]{
		IntervalFetcher: NewIntervalFetcher(updateFn, interval),
		maxAge:          maxAge,
	}
}

// Lookup implements KeyedFetcher.
func (p *KeyedIntervalFetcher[K, V]) Lookup(key K) (V, error) {
	var zero V

	snapshot, retrievedAt, err := p.IntervalFetcher.Get()
	if err != nil {
		return zero, err
	}

	if age := time.Since(retrievedAt); age > p.maxAge {
		return zero, StaleSnapshotError{Age: age, MaxAge: p.maxAge}
	}

	value, ok := snapshot[key]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return value, nil
}
