package dom

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Handler receives a dispatched event.
type Handler func(ev *Event)

// Handlers maps handler names referenced from markup to their implementation.
type Handlers map[string]Handler

// View is the built form of an Element: detached root nodes plus the event
// handlers bound to them.
type View struct {
	roots    []*html.Node
	bindings map[*html.Node]map[string][]Handler
}

func newView() *View {
	return &View{bindings: make(map[*html.Node]map[string][]Handler)}
}

// Roots returns the top-level nodes of the view.
func (v *View) Roots() []*html.Node {
	if v == nil {
		return nil
	}
	return v.roots
}

func (v *View) bind(node *html.Node, event string, handler Handler) {
	if handler == nil {
		return
	}
	event = normalizeEvent(event)
	byType, ok := v.bindings[node]
	if !ok {
		byType = make(map[string][]Handler)
		v.bindings[node] = byType
	}
	byType[event] = append(byType[event], handler)
}

func (v *View) absorb(other *View) {
	if other == nil {
		return
	}
	for node, byType := range other.bindings {
		for event, handlers := range byType {
			for _, handler := range handlers {
				v.bind(node, event, handler)
			}
		}
	}
}

// Element is a component instantiated with its properties, ready to be
// mounted.
type Element interface {
	Build(ctx context.Context) (*View, error)
}

// ElementFunc adapts a function to the Element interface.
type ElementFunc func(ctx context.Context) (*View, error)

// Build implements Element.
func (fn ElementFunc) Build(ctx context.Context) (*View, error) {
	return fn(ctx)
}

// Child is anything that can be placed inside an element built with El:
// attributes, handlers, text and nested elements.
type Child interface {
	mount(ctx context.Context, view *View, parent *html.Node) error
}

// Tree is an Element that can also be nested inside El.
type Tree interface {
	Element
	Child
}

type elementNode struct {
	tag      string
	children []Child
}

// El builds an element node with the given tag.
func El(tag string, children ...Child) Tree {
	return &elementNode{tag: strings.ToLower(strings.TrimSpace(tag)), children: children}
}

func (e *elementNode) Build(ctx context.Context) (*View, error) {
	view := newView()
	holder := &html.Node{Type: html.ElementNode, Data: "template"}
	if err := e.mount(ctx, view, holder); err != nil {
		return nil, err
	}
	view.roots = detachChildren(holder)
	return view, nil
}

func (e *elementNode) mount(ctx context.Context, view *View, parent *html.Node) error {
	if e.tag == "" {
		return fmt.Errorf("dom: element tag is required")
	}
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     e.tag,
		DataAtom: atom.Lookup([]byte(e.tag)),
	}
	for _, child := range e.children {
		if child == nil {
			continue
		}
		if err := child.mount(ctx, view, node); err != nil {
			return err
		}
	}
	parent.AppendChild(node)
	return nil
}

type textNode string

// Text builds a text node.
func Text(value string) Child {
	return textNode(value)
}

// Textf builds a formatted text node.
func Textf(format string, args ...any) Child {
	return textNode(fmt.Sprintf(format, args...))
}

func (t textNode) mount(_ context.Context, _ *View, parent *html.Node) error {
	if t == "" {
		return nil
	}
	parent.AppendChild(&html.Node{Type: html.TextNode, Data: string(t)})
	return nil
}

type attrChild struct {
	key   string
	value string
}

// Attr sets an attribute on the enclosing element, replacing an existing
// value.
func Attr(key, value string) Child {
	return attrChild{key: strings.ToLower(strings.TrimSpace(key)), value: value}
}

// TestID sets the data-testid attribute.
func TestID(id string) Child {
	return Attr(DefaultTestIDAttribute, id)
}

// Class sets the class attribute.
func Class(names ...string) Child {
	return Attr("class", strings.Join(names, " "))
}

func (a attrChild) mount(_ context.Context, _ *View, parent *html.Node) error {
	if a.key == "" {
		return nil
	}
	setAttr(parent, a.key, a.value)
	return nil
}

type handlerChild struct {
	event   string
	handler Handler
}

// On binds handler to event on the enclosing element.
func On(event string, handler Handler) Child {
	return handlerChild{event: event, handler: handler}
}

// OnClick binds a no-argument callback to click events. A nil callback binds
// nothing.
func OnClick(fn func()) Child {
	if fn == nil {
		return nil
	}
	return On(EventClick, func(*Event) { fn() })
}

func (h handlerChild) mount(_ context.Context, view *View, parent *html.Node) error {
	view.bind(parent, h.event, h.handler)
	return nil
}

// If returns child when cond holds and nothing otherwise.
func If(cond bool, child Child) Child {
	if !cond {
		return nil
	}
	return child
}

type fragment struct {
	children []Child
}

// Fragment groups children without a wrapping element. Attributes and
// handlers placed directly in a fragment are ignored.
func Fragment(children ...Child) Tree {
	return &fragment{children: children}
}

func (f *fragment) Build(ctx context.Context) (*View, error) {
	view := newView()
	holder := &html.Node{Type: html.ElementNode, Data: "template"}
	if err := f.mount(ctx, view, holder); err != nil {
		return nil, err
	}
	delete(view.bindings, holder)
	view.roots = detachChildren(holder)
	return view, nil
}

func (f *fragment) mount(ctx context.Context, view *View, parent *html.Node) error {
	for _, child := range f.children {
		if child == nil {
			continue
		}
		if err := child.mount(ctx, view, parent); err != nil {
			return err
		}
	}
	return nil
}

type embedded struct {
	element Element
}

// Embed places an arbitrary Element, such as a template-backed component,
// inside a tree built with El.
func Embed(element Element) Child {
	if element == nil {
		return nil
	}
	if child, ok := element.(Child); ok {
		return child
	}
	return embedded{element: element}
}

func (e embedded) mount(ctx context.Context, view *View, parent *html.Node) error {
	built, err := e.element.Build(ctx)
	if err != nil {
		return err
	}
	if built == nil {
		return nil
	}
	for _, root := range built.roots {
		if root.Parent != nil {
			root.Parent.RemoveChild(root)
		}
		parent.AppendChild(root)
	}
	view.absorb(built)
	return nil
}

func detachChildren(holder *html.Node) []*html.Node {
	var roots []*html.Node
	for child := holder.FirstChild; child != nil; {
		next := child.NextSibling
		holder.RemoveChild(child)
		roots = append(roots, child)
		child = next
	}
	return roots
}

func setAttr(node *html.Node, key, value string) {
	for i := range node.Attr {
		if node.Attr[i].Namespace == "" && node.Attr[i].Key == key {
			node.Attr[i].Val = value
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: key, Val: value})
}

func getAttr(node *html.Node, key string) (string, bool) {
	if node == nil {
		return "", false
	}
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func removeAttr(node *html.Node, key string) {
	out := node.Attr[:0]
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			continue
		}
		out = append(out, attr)
	}
	node.Attr = out
}
