package testsupport

import (
	"github.com/goliatone/go-renderkit/pkg/dom"
)

// Callback receives events from fixtures. *Spy satisfies it.
type Callback interface {
	Call(args ...any)
}

// ButtonProps configures the Button fixture.
type ButtonProps struct {
	Icon    string   `json:"icon" yaml:"icon"`
	Text    string   `json:"text" yaml:"text"`
	OnClick Callback `json:"-" yaml:"-"`
}

// Button renders a button with an optional icon span ahead of its text:
//
//	<button data-testid="button"><span data-testid="icon">icon</span>text</button>
func Button(p ButtonProps) dom.Element {
	return dom.El("button",
		dom.TestID("button"),
		dom.If(p.OnClick != nil, dom.On(dom.EventClick, func(*dom.Event) { p.OnClick.Call() })),
		dom.If(p.Icon != "", dom.El("span", dom.TestID("icon"), dom.Text(p.Icon))),
		dom.Text(p.Text),
	)
}

// ButtonTemplate is the Button fixture as a template, for engines that bind
// handlers through data-on-* attributes.
const ButtonTemplate = `<button data-testid="button" data-on-click="onClick">` +
	`{% if icon %}<span data-testid="icon">{{ icon }}</span>{% endif %}{{ text }}</button>`

// DefaultButtonProps returns fresh defaults with a new spy behind OnClick.
func DefaultButtonProps() ButtonProps {
	return ButtonProps{Text: "hello", OnClick: NewSpy()}
}

// SpyOf returns the spy behind a callback, or nil when it is not a *Spy.
func SpyOf(cb Callback) *Spy {
	spy, _ := cb.(*Spy)
	return spy
}
