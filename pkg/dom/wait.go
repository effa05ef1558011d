package dom

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Pending is the eventual result of a waiter.
type Pending[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newPending[T any]() *Pending[T] {
	return &Pending[T]{done: make(chan struct{})}
}

// Resolved returns an already settled Pending.
func Resolved[T any](value T, err error) *Pending[T] {
	p := newPending[T]()
	p.settle(value, err)
	return p
}

func (p *Pending[T]) settle(value T, err error) {
	p.value = value
	p.err = err
	close(p.done)
}

// Await blocks until the waiter settles.
func (p *Pending[T]) Await() (T, error) {
	<-p.done
	return p.value, p.err
}

// Done is closed once the waiter settles.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Settled reports whether the waiter has finished without blocking.
func (p *Pending[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// WaitForValue calls fn until it succeeds, re-checking whenever the screen
// changes and on the poll interval. It fails with ErrTimeout, wrapping the last
// error from fn, once the timeout elapses, and with the context error when ctx
// ends first. The first check runs on the waiter goroutine, but the change
// subscription is taken before WaitForValue returns, so no mutation made by the
// caller afterwards is missed.
func WaitForValue[T any](ctx context.Context, s *Screen, fn func() (T, error), options ...WaitOption) *Pending[T] {
	cfg := waitConfig{timeout: s.cfg.asyncTimeout, interval: s.cfg.pollInterval}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := newPending[T]()
	changes := s.changes()

	go func() {
		deadline := time.NewTimer(cfg.timeout)
		defer deadline.Stop()
		ticker := time.NewTicker(cfg.interval)
		defer ticker.Stop()

		var zero T
		for {
			value, err := fn()
			if err == nil {
				p.settle(value, nil)
				return
			}
			select {
			case <-ctx.Done():
				p.settle(zero, ctx.Err())
				return
			case <-deadline.C:
				last, lastErr := fn()
				if lastErr == nil {
					p.settle(last, nil)
					return
				}
				p.settle(zero, fmt.Errorf("%w after %s: %w", ErrTimeout, cfg.timeout, lastErr))
				return
			case <-changes:
				changes = s.changes()
			case <-ticker.C:
			}
		}
	}()
	return p
}

// WaitFor resolves once cond returns nil.
func WaitFor(ctx context.Context, s *Screen, cond func() error, options ...WaitOption) *Pending[struct{}] {
	return WaitForValue(ctx, s, func() (struct{}, error) {
		return struct{}{}, cond()
	}, options...)
}

// WaitForElement resolves to the element q finds once it appears.
func WaitForElement(ctx context.Context, s *Screen, q Query, options ...WaitOption) *Pending[*Node] {
	return WaitForValue(ctx, s, func() (*Node, error) {
		return q()
	}, options...)
}

var errStillPresent = errors.New("dom: element still present")

// WaitForElementToBeRemoved resolves once q reports ErrNotFound. The element
// must be present when the waiter is created; otherwise the result settles
// immediately with ErrAlreadyRemoved. The resolved value carries no meaning.
func WaitForElementToBeRemoved(ctx context.Context, s *Screen, q Query, options ...WaitOption) *Pending[struct{}] {
	if _, err := q(); errors.Is(err, ErrNotFound) {
		return Resolved(struct{}{}, fmt.Errorf("%w: %w", ErrAlreadyRemoved, err))
	}
	return WaitFor(ctx, s, func() error {
		_, err := q()
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return errStillPresent
	}, options...)
}
