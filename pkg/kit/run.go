package kit

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-renderkit/pkg/dom"
	"github.com/goliatone/go-renderkit/pkg/props"
)

var (
	// ErrInvalidConfig is returned by Run when the render function or the
	// component is missing.
	ErrInvalidConfig = errors.New("kit: invalid configuration")
	// ErrUnsupported is returned by Result helpers when the render output does
	// not provide the operation.
	ErrUnsupported = errors.New("kit: operation not supported by render output")
)

// Rerenderer is implemented by render outputs that can replace their mounted
// element, such as *dom.Screen.
type Rerenderer interface {
	Rerender(ctx context.Context, ui dom.Element) error
}

// Unmounter is implemented by render outputs that can unmount, such as
// *dom.Screen.
type Unmounter interface {
	Unmount()
}

// Result bundles the outcome of one run.
type Result[P, R, E, F, A any] struct {
	Props    P
	Output   R
	Elements E
	Fire     F
	WaitFor  A

	component Component[P]
}

// Run renders the component with the default properties overlaid by
// overrides, then threads the render output through the configured builders.
// Errors from the render function are returned as is.
func (c Config[P, R, E, F, A]) Run(ctx context.Context, overrides ...props.Override[P]) (*Result[P, R, E, F, A], error) {
	return c.RunWith(ctx, nil, overrides...)
}

// RunWith is Run with render options forwarded to the render function.
func (c Config[P, R, E, F, A]) RunWith(ctx context.Context, renderOptions []dom.Option, overrides ...props.Override[P]) (*Result[P, R, E, F, A], error) {
	if c.render == nil {
		return nil, fmt.Errorf("%w: render function is required", ErrInvalidConfig)
	}
	if c.component == nil {
		return nil, fmt.Errorf("%w: component is required", ErrInvalidConfig)
	}

	properties := props.Apply(c.defaults.Resolve(), overrides...)

	output, err := c.render(ctx, c.component(properties), renderOptions...)
	if err != nil {
		return nil, err
	}

	result := &Result[P, R, E, F, A]{
		Props:     properties,
		Output:    output,
		component: c.component,
	}
	if c.elements != nil {
		result.Elements = c.elements(output)
	}
	if c.fire != nil {
		result.Fire = c.fire(result.Elements)
	}
	if c.async != nil {
		result.WaitFor = c.async(result.Elements)
	}
	return result, nil
}

// MustRun is Run for table setup; it panics on error.
func (c Config[P, R, E, F, A]) MustRun(ctx context.Context, overrides ...props.Override[P]) *Result[P, R, E, F, A] {
	result, err := c.Run(ctx, overrides...)
	if err != nil {
		panic(err)
	}
	return result
}

// Rerender instantiates the component again with the run's properties plus
// overrides and hands it to the render output. On success Props holds the
// properties that were rendered.
func (r *Result[P, R, E, F, A]) Rerender(ctx context.Context, overrides ...props.Override[P]) error {
	target, ok := any(r.Output).(Rerenderer)
	if !ok {
		return fmt.Errorf("%w: rerender", ErrUnsupported)
	}
	next := props.Apply(r.Props, overrides...)
	if err := target.Rerender(ctx, r.component(next)); err != nil {
		return err
	}
	r.Props = next
	return nil
}

// Unmount unmounts the render output.
func (r *Result[P, R, E, F, A]) Unmount() error {
	target, ok := any(r.Output).(Unmounter)
	if !ok {
		return fmt.Errorf("%w: unmount", ErrUnsupported)
	}
	target.Unmount()
	return nil
}
