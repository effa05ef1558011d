package kit

import (
	"context"

	"github.com/goliatone/go-renderkit/pkg/dom"
	"github.com/goliatone/go-renderkit/pkg/props"
)

// Empty is the result of an optional builder that was never configured.
type Empty struct{}

// RenderFunc mounts a UI element and returns the render output. dom.Render
// satisfies RenderFunc[*dom.Screen].
type RenderFunc[R any] func(ctx context.Context, ui dom.Element, options ...dom.Option) (R, error)

// Component instantiates a UI element from its properties.
type Component[P any] func(p P) dom.Element

// Config is an immutable kit configuration. P is the property type, R the
// render output, and E, F and A the shapes produced by the element, fire and
// async builders. Every setter returns a new Config and leaves the receiver
// untouched, so a Config declared once at package level can back any number
// of runs.
type Config[P, R, E, F, A any] struct {
	render    RenderFunc[R]
	component Component[P]
	defaults  props.Provider[P]
	elements  func(R) E
	fire      func(E) F
	async     func(E) A
}

// Create returns a configuration with no optional builders set.
func Create[P, R any](render RenderFunc[R], component Component[P], defaults props.Provider[P]) Config[P, R, Empty, Empty, Empty] {
	return Config[P, R, Empty, Empty, Empty]{
		render:    render,
		component: component,
		defaults:  defaults,
	}
}

// Factory fixes the render function so many components can share it.
type Factory[R any] struct {
	render RenderFunc[R]
}

// WithRender returns a Factory bound to render.
func WithRender[R any](render RenderFunc[R]) Factory[R] {
	return Factory[R]{render: render}
}

// Render returns the render function the factory was built with.
func (f Factory[R]) Render() RenderFunc[R] {
	return f.render
}

// NewConfig is Create with the factory's render function.
func NewConfig[P, R any](f Factory[R], component Component[P], defaults props.Provider[P]) Config[P, R, Empty, Empty, Empty] {
	return Create(f.render, component, defaults)
}

// SetElements replaces the element builder. Fire and async builders are kept
// when they accept the new element type and dropped otherwise, since a builder
// typed on the previous shape cannot receive the new one.
func SetElements[P, R, E, F, A, E2 any](c Config[P, R, E, F, A], fn func(R) E2) Config[P, R, E2, F, A] {
	next := Config[P, R, E2, F, A]{
		render:    c.render,
		component: c.component,
		defaults:  c.defaults,
		elements:  fn,
	}
	if fire, ok := any(c.fire).(func(E2) F); ok {
		next.fire = fire
	}
	if async, ok := any(c.async).(func(E2) A); ok {
		next.async = async
	}
	return next
}

// SetFire replaces the fire builder. fn receives the value produced by the
// element builder.
func SetFire[P, R, E, F, A, F2 any](c Config[P, R, E, F, A], fn func(E) F2) Config[P, R, E, F2, A] {
	return Config[P, R, E, F2, A]{
		render:    c.render,
		component: c.component,
		defaults:  c.defaults,
		elements:  c.elements,
		fire:      fn,
		async:     c.async,
	}
}

// SetAsync replaces the async builder. fn receives the value produced by the
// element builder.
func SetAsync[P, R, E, F, A, A2 any](c Config[P, R, E, F, A], fn func(E) A2) Config[P, R, E, F, A2] {
	return Config[P, R, E, F, A2]{
		render:    c.render,
		component: c.component,
		defaults:  c.defaults,
		elements:  c.elements,
		fire:      c.fire,
		async:     fn,
	}
}

// WithElements is SetElements for callers that fixed E up front.
func (c Config[P, R, E, F, A]) WithElements(fn func(R) E) Config[P, R, E, F, A] {
	c.elements = fn
	return c
}

// WithFire is SetFire for callers that fixed F up front.
func (c Config[P, R, E, F, A]) WithFire(fn func(E) F) Config[P, R, E, F, A] {
	c.fire = fn
	return c
}

// WithAsync is SetAsync for callers that fixed A up front.
func (c Config[P, R, E, F, A]) WithAsync(fn func(E) A) Config[P, R, E, F, A] {
	c.async = fn
	return c
}

// Defaults resolves a fresh copy of the default properties.
func (c Config[P, R, E, F, A]) Defaults() P {
	return c.defaults.Resolve()
}

// Component returns the configured component.
func (c Config[P, R, E, F, A]) Component() Component[P] {
	return c.component
}

// HasElements reports whether an element builder is configured.
func (c Config[P, R, E, F, A]) HasElements() bool { return c.elements != nil }

// HasFire reports whether a fire builder is configured.
func (c Config[P, R, E, F, A]) HasFire() bool { return c.fire != nil }

// HasAsync reports whether an async builder is configured.
func (c Config[P, R, E, F, A]) HasAsync() bool { return c.async != nil }
