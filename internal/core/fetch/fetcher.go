package fetch

import (
	"context"
	"sync"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// State is what a card renders: loading, data or an error message
type State[T any] struct {
	Loading bool   `json:"loading"`
	Data    *T     `json:"data"`
	Error   string `json:"error,omitempty"`
}

// LoadFunc performs a single attempt for the given city
type LoadFunc[T any] func(ctx context.Context, cityID int64) (T, error)

// Config describes one kind of per-entity fetcher
type Config[T any] struct {
	// Resource names the fetched data in logs, e.g. "weather" or "forecast"
	Resource string
	Load     LoadFunc[T]
	Policy   RetryPolicy
	Message  func(err error) string
	Logger   ports.Logger
}

// Validate checks if all required settings are provided
func (c *Config[T]) Validate() error {
	if c.Resource == "" {
		return errors.NewValidationError("fetcher resource is required")
	}
	if c.Load == nil {
		return errors.NewValidationError("fetcher load function is required")
	}
	if c.Message == nil {
		return errors.NewValidationError("fetcher message function is required")
	}
	if c.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// Fetcher owns the fetch lifecycle of one resource for one city. It is keyed by
// city identity: changing the target restarts the load, and the outcome of any
// load that has been superseded is discarded.
type Fetcher[T any] struct {
	cfg     Config[T]
	baseCtx context.Context

	mu         sync.Mutex
	cityID     int64
	generation uint64
	state      State[T]
	cancel     context.CancelFunc
	done       chan struct{}
}

// New creates a fetcher for cityID and starts loading immediately.
// Loads run on contexts derived from ctx.
func New[T any](ctx context.Context, cfg Config[T], cityID int64) (*Fetcher[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &Fetcher[T]{
		cfg:     cfg,
		baseCtx: ctx,
		cityID:  cityID,
	}

	f.mu.Lock()
	f.start()
	f.mu.Unlock()

	return f, nil
}

// CityID returns the current target
func (f *Fetcher[T]) CityID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cityID
}

// SetTarget points the fetcher at another city. Setting the current target is a no-op.
func (f *Fetcher[T]) SetTarget(cityID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cityID == f.cityID {
		return
	}
	f.cityID = cityID
	f.start()
}

// Refetch starts a fresh load with the retry counter reset to zero.
// Any load in flight is abandoned.
func (f *Fetcher[T]) Refetch() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.start()
}

// State returns a copy of the current state
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Wait blocks until the load that is current at call time settles
func (f *Fetcher[T]) Wait(ctx context.Context) error {
	f.mu.Lock()
	done := f.done
	f.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close abandons any load in flight
func (f *Fetcher[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

// start must be called with f.mu held
func (f *Fetcher[T]) start() {
	if f.cancel != nil {
		f.cancel()
	}

	f.generation++
	ctx, cancel := context.WithCancel(f.baseCtx)
	f.cancel = cancel
	f.done = make(chan struct{})
	f.state = State[T]{Loading: true}

	go f.run(ctx, cancel, f.generation, f.cityID, f.done)
}

func (f *Fetcher[T]) run(ctx context.Context, cancel context.CancelFunc, generation uint64, cityID int64, done chan struct{}) {
	defer close(done)
	defer cancel()

	data, err := Do(ctx, f.cfg.Policy, func(ctx context.Context) (T, error) {
		return f.cfg.Load(ctx, cityID)
	})

	f.mu.Lock()
	defer f.mu.Unlock()

	if generation != f.generation {
		f.cfg.Logger.Debug("Discarding superseded fetch result",
			ports.F("resource", f.cfg.Resource),
			ports.F("city_id", cityID))
		return
	}

	if err != nil {
		f.cfg.Logger.Warn("Fetch failed",
			ports.F("resource", f.cfg.Resource),
			ports.F("city_id", cityID),
			ports.F("failure", Classify(err).String()),
			ports.F("error", err.Error()))
		f.state = State[T]{Error: f.cfg.Message(err)}
		return
	}

	f.state = State[T]{Data: &data}
}
