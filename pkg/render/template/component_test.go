package template_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-renderkit/pkg/dom"
	"github.com/goliatone/go-renderkit/pkg/kit"
	"github.com/goliatone/go-renderkit/pkg/props"
	"github.com/goliatone/go-renderkit/pkg/render/template"
	"github.com/goliatone/go-renderkit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-renderkit/pkg/testsupport"
)

func bindButton(p testsupport.ButtonProps) dom.Handlers {
	return dom.Handlers{
		"onClick": func(*dom.Event) {
			if p.OnClick != nil {
				p.OnClick.Call()
			}
		},
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{
		"button.tpl": {Data: []byte(testsupport.ButtonTemplate)},
		"broken.tpl": {Data: []byte(`<button data-on-click="missing">{{ text }}</button>`)},
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestComponent_RendersAndBindsHandlers(t *testing.T) {
	button := template.Component(newEngine(t), "button", bindButton)
	cfg := kit.SetElements(
		kit.Create(dom.Render, button, props.Fresh(testsupport.DefaultButtonProps)),
		func(s *dom.Screen) dom.Query { return s.Getter(dom.ByTestID("button")) },
	)

	res, err := cfg.Run(context.Background(), props.Fields(testsupport.ButtonProps{Text: "world"}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := res.Output.TextContent(); got != "world" {
		t.Fatalf("text content: want world, got %q", got)
	}
	if err := dom.ClickOn(res.Elements); err != nil {
		t.Fatalf("click: %v", err)
	}
	testsupport.SpyOf(res.Props.OnClick).AssertNumberOfCalls(t, "Call", 1)
}

func TestComponent_InlineTemplateRerender(t *testing.T) {
	button := template.Component(newEngine(t), testsupport.ButtonTemplate, bindButton)
	res, err := kit.Create(dom.Render, button, props.Fresh(testsupport.DefaultButtonProps)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if icon, err := res.Output.QueryByTestID("icon"); err != nil || icon != nil {
		t.Fatalf("expected no icon before rerender, got %v %v", icon, err)
	}

	if err := res.Rerender(context.Background(), props.Fields(testsupport.ButtonProps{Icon: "*"})); err != nil {
		t.Fatalf("rerender: %v", err)
	}
	icon, err := res.Output.GetByTestID("icon")
	if err != nil {
		t.Fatalf("icon after rerender: %v", err)
	}
	if got := icon.TextContent(); got != "*" {
		t.Fatalf("icon text: want *, got %q", got)
	}
}

func TestComponent_Errors(t *testing.T) {
	ctx := context.Background()
	defaults := props.Static(testsupport.ButtonProps{Text: "x"})

	_, err := kit.Create(dom.Render, template.Component[testsupport.ButtonProps](nil, "button", nil), defaults).Run(ctx)
	if !errors.Is(err, template.ErrNilRenderer) {
		t.Fatalf("expected ErrNilRenderer, got %v", err)
	}

	engine := newEngine(t)
	_, err = kit.Create(dom.Render, template.Component(engine, "missing", bindButton), defaults).Run(ctx)
	if err == nil {
		t.Fatalf("expected missing template to fail")
	}

	_, err = kit.Create(dom.Render, template.Component(engine, "broken", bindButton), defaults).Run(ctx)
	if err == nil {
		t.Fatalf("expected unbound handler to fail")
	}
}
