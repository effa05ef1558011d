package renderkit

import (
	"context"

	"github.com/goliatone/go-renderkit/pkg/dom"
	"github.com/goliatone/go-renderkit/pkg/kit"
	"github.com/goliatone/go-renderkit/pkg/props"
	"github.com/goliatone/go-renderkit/pkg/render/template"
)

// Empty is the result of an optional kit builder that was never set.
type Empty = kit.Empty

// Screen is the in-memory render output produced by Render.
type Screen = dom.Screen

// Element is anything the kit can mount.
type Element = dom.Element

// PropsMap is the dynamic property bag used by template components.
type PropsMap = props.Map

// Render mounts ui on a fresh in-memory screen.
func Render(ctx context.Context, ui Element, options ...dom.Option) (*Screen, error) {
	return dom.Render(ctx, ui, options...)
}

// Create returns a kit configuration that renders component with dom.Render.
// Builders are added with kit.SetElements, kit.SetFire and kit.SetAsync.
func Create[P any](component kit.Component[P], defaults props.Provider[P]) kit.Config[P, *Screen, Empty, Empty, Empty] {
	return kit.NewConfig(DOM, component, defaults)
}

// DOM is the factory shared by components rendered on an in-memory screen.
var DOM = kit.WithRender[*Screen](dom.Render)

// TemplateComponent is template.Component re-exported for callers that only
// import the root package.
func TemplateComponent[P any](renderer template.TemplateRenderer, name string, bind template.Binder[P]) kit.Component[P] {
	return template.Component(renderer, name, bind)
}
