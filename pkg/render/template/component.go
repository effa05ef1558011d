package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-renderkit/pkg/dom"
	"github.com/goliatone/go-renderkit/pkg/kit"
)

// ErrNilRenderer is returned when a component is built without an engine.
var ErrNilRenderer = errors.New("template: renderer is nil")

// Binder maps a component's properties to the handlers named by the
// template's data-on-* attributes.
type Binder[P any] func(p P) dom.Handlers

// Component returns a kit component that renders the template called name
// with the properties as data. name may also hold inline template content.
// Rendering happens when the element is built, so template errors surface from
// the render function passed to kit.Create.
func Component[P any](renderer TemplateRenderer, name string, bind Binder[P]) kit.Component[P] {
	return func(p P) dom.Element {
		return dom.ElementFunc(func(ctx context.Context) (*dom.View, error) {
			if renderer == nil {
				return nil, ErrNilRenderer
			}
			markup, err := renderer.Render(name, p)
			if err != nil {
				return nil, fmt.Errorf("template: render component: %w", err)
			}
			var handlers dom.Handlers
			if bind != nil {
				handlers = bind(p)
			}
			return dom.Markup(markup, handlers).Build(ctx)
		})
	}
}
