// Package circuitbreaker guards calls to the insight backend. After a run of
// failures the breaker opens and callers fail fast (falling back to the
// heuristic path) instead of stacking timeouts against a dead service.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrCircuitOpen     = errors.New("circuit breaker is open")
	ErrTooManyRequests = errors.New("too many requests in half-open state")
)

type State int

const (
	StateClosed State = iota
	StateHalfOpen
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateHalfOpen:
		return "half-open"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Config tunes the breaker. Zero values take conservative defaults.
type Config struct {
	// MaxRequests caps how many probes are admitted while half-open.
	MaxRequests uint32
	// Interval resets the closed-state failure window; zero means the
	// window never resets on its own.
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
	// FailureThreshold is the consecutive-failure count that trips the
	// breaker; SuccessThreshold is the consecutive-success count that
	// closes it again.
	FailureThreshold uint32
	SuccessThreshold uint32
	Logger           *zap.Logger
}

// CircuitBreaker is safe for concurrent use.
type CircuitBreaker struct {
	name string
	cfg  Config

	mu     sync.Mutex
	state  State
	epoch  uint64
	window window
	expiry time.Time
}

// window accumulates outcomes within one state epoch. Changing state or
// rolling the closed-state interval starts a fresh window.
type window struct {
	admitted        uint32
	consecutiveOK   uint32
	consecutiveFail uint32
}

func NewCircuitBreaker(name string, cfg Config) *CircuitBreaker {
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold == 0 {
		cfg.SuccessThreshold = 2
	}

	cb := &CircuitBreaker{name: name, cfg: cfg}
	cb.rollEpoch(time.Now())
	return cb
}

// Execute runs fn under the breaker. It returns ErrCircuitOpen without
// calling fn when the breaker is open, and fn's own error otherwise.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	epoch, err := cb.admit()
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			cb.settle(epoch, false)
			panic(r)
		}
	}()

	err = fn()
	cb.settle(epoch, err == nil)
	return err
}

// State reports the current state, advancing open → half-open on expiry.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, _ := cb.advance(time.Now())
	return state
}

func (cb *CircuitBreaker) admit() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, epoch := cb.advance(time.Now())

	switch {
	case state == StateOpen:
		return epoch, ErrCircuitOpen
	case state == StateHalfOpen && cb.window.admitted >= cb.cfg.MaxRequests:
		return epoch, ErrTooManyRequests
	}

	cb.window.admitted++
	return epoch, nil
}

func (cb *CircuitBreaker) settle(admitted uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := time.Now()
	state, epoch := cb.advance(now)
	if epoch != admitted {
		// The window this call was admitted under is gone; its outcome
		// must not count against the new one.
		return
	}

	if success {
		cb.window.consecutiveOK++
		cb.window.consecutiveFail = 0
		if state == StateHalfOpen && cb.window.consecutiveOK >= cb.cfg.SuccessThreshold {
			cb.transition(StateClosed, now)
		}
		return
	}

	cb.window.consecutiveFail++
	cb.window.consecutiveOK = 0
	if state == StateHalfOpen ||
		(state == StateClosed && cb.window.consecutiveFail >= cb.cfg.FailureThreshold) {
		cb.transition(StateOpen, now)
	}
}

// advance applies time-driven state changes and returns the effective state.
// Callers must hold cb.mu.
func (cb *CircuitBreaker) advance(now time.Time) (State, uint64) {
	switch cb.state {
	case StateClosed:
		if !cb.expiry.IsZero() && cb.expiry.Before(now) {
			cb.rollEpoch(now)
		}
	case StateOpen:
		if cb.expiry.Before(now) {
			cb.transition(StateHalfOpen, now)
		}
	}
	return cb.state, cb.epoch
}

func (cb *CircuitBreaker) transition(next State, now time.Time) {
	if cb.state == next {
		return
	}

	prev := cb.state
	cb.state = next
	cb.rollEpoch(now)

	if cb.cfg.Logger != nil {
		cb.cfg.Logger.Info("Circuit breaker state changed",
			zap.String("name", cb.name),
			zap.String("from", prev.String()),
			zap.String("to", next.String()),
		)
	}
}

func (cb *CircuitBreaker) rollEpoch(now time.Time) {
	cb.epoch++
	cb.window = window{}

	switch cb.state {
	case StateClosed:
		if cb.cfg.Interval > 0 {
			cb.expiry = now.Add(cb.cfg.Interval)
		} else {
			cb.expiry = time.Time{}
		}
	case StateOpen:
		cb.expiry = now.Add(cb.cfg.Timeout)
	default:
		cb.expiry = time.Time{}
	}
}
