package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/coffeehunt-cli/internal/core/domain"
)

// Submission identifies one request issued through a Fetcher.
// Ctx is cancelled as soon as a newer submission on the same key is made.
type Submission struct {
	Key   string
	Seq   uint64
	Input any
	Ctx   context.Context
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*fetcherConfig)

type fetcherConfig struct {
	softFail bool
}

// SoftFail makes failed requests clear the data and return to idle
// instead of entering the error state.
func SoftFail() FetcherOption {
	return func(c *fetcherConfig) {
		c.softFail = true
	}
}

// FetcherSnapshot is a consistent view of a fetcher's state.
type FetcherSnapshot[T any] struct {
	Key   string
	State domain.FetchState
	Data  T
	Err   error
	Seq   uint64
}

// Fetcher coordinates requests issued under a stable key.
// A new submission supersedes the previous one: the previous context is
// cancelled and its result is discarded when it resolves.
type Fetcher[T any] struct {
	mu      sync.Mutex
	key     string
	cfg     fetcherConfig
	seq     uint64
	current *Submission
	cancel  context.CancelFunc
	state   domain.FetchState
	data    T
	err     error
}

// NewFetcher creates an idle fetcher for key.
func NewFetcher[T any](key string, opts ...FetcherOption) *Fetcher[T] {
	f := &Fetcher[T]{key: key, state: domain.FetchIdle}
	for _, opt := range opts {
		opt(&f.cfg)
	}
	return f
}

// Key returns the fetcher key.
func (f *Fetcher[T]) Key() string {
	return f.key
}

// Submit starts a new request, cancelling any request still in flight.
// The returned submission must be passed to Resolve with the result.
func (f *Fetcher[T]) Submit(parent context.Context, input any) Submission {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	f.seq++
	sub := Submission{Key: f.key, Seq: f.seq, Input: input, Ctx: ctx}
	f.current = &sub
	f.cancel = cancel
	f.state = domain.FetchLoading
	f.err = nil
	return sub
}

// Resolve applies the result of sub. It returns false and changes nothing
// when sub has been superseded or already resolved.
func (f *Fetcher[T]) Resolve(sub Submission, data T, err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current == nil || sub.Seq != f.current.Seq {
		return false
	}
	f.cancel()
	f.current = nil
	f.cancel = nil

	if err != nil {
		var zero T
		f.err = err
		if f.cfg.softFail {
			f.data = zero
			f.state = domain.FetchIdle
			return true
		}
		f.state = domain.FetchError
		return true
	}
	f.data = data
	f.err = nil
	f.state = domain.FetchIdle
	return true
}

// Abort cancels the in-flight request, keeping the last resolved data.
func (f *Fetcher[T]) Abort() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
	}
	f.current = nil
	f.cancel = nil
	if f.state == domain.FetchLoading {
		f.state = domain.FetchIdle
	}
}

// Reset aborts any request and forgets the data.
func (f *Fetcher[T]) Reset() {
	f.Abort()
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	f.data = zero
	f.err = nil
	f.state = domain.FetchIdle
}

// Pending returns the in-flight submission, if any.
func (f *Fetcher[T]) Pending() (Submission, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return Submission{}, false
	}
	return *f.current, true
}

// Snapshot returns the fetcher state.
func (f *Fetcher[T]) Snapshot() FetcherSnapshot[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FetcherSnapshot[T]{
		Key:   f.key,
		State: f.state,
		Data:  f.data,
		Err:   f.err,
		Seq:   f.seq,
	}
}

// State returns the current fetch state.
func (f *Fetcher[T]) State() domain.FetchState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Data returns the most recently resolved data.
func (f *Fetcher[T]) Data() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// Do submits a request, runs fn with the submission context and resolves it.
// It returns the applied flag from Resolve along with fn's result.
func (f *Fetcher[T]) Do(parent context.Context, input any, fn func(ctx context.Context) (T, error)) (T, bool, error) {
	sub := f.Submit(parent, input)
	data, err := fn(sub.Ctx)
	return data, f.Resolve(sub, data, err), err
}

// Registry hands out one fetcher per key, creating them on first use.
type Registry[T any] struct {
	mu       sync.Mutex
	opts     []FetcherOption
	fetchers map[string]*Fetcher[T]
}

// NewRegistry creates a registry whose fetchers use opts.
func NewRegistry[T any](opts ...FetcherOption) *Registry[T] {
	return &Registry[T]{
		opts:     opts,
		fetchers: make(map[string]*Fetcher[T]),
	}
}

// Get returns the fetcher for key.
func (r *Registry[T]) Get(key string) *Fetcher[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fetchers[key]
	if !ok {
		f = NewFetcher[T](key, r.opts...)
		r.fetchers[key] = f
	}
	return f
}

// Pending returns the in-flight submissions of all keys, ordered by key.
func (r *Registry[T]) Pending() []Submission {
	r.mu.Lock()
	keys := make([]string, 0, len(r.fetchers))
	for k := range r.fetchers {
		keys = append(keys, k)
	}
	r.mu.Unlock()
	sort.Strings(keys)

	var pending []Submission
	for _, k := range keys {
		if sub, ok := r.Get(k).Pending(); ok {
			pending = append(pending, sub)
		}
	}
	return pending
}

// Delay waits for d or until ctx is done, whichever comes first.
// A cancelled wait returns ctx.Err().
func Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsSuperseded reports whether err came from a cancelled submission.
func IsSuperseded(err error) bool {
	return errors.Is(err, context.Canceled)
}
