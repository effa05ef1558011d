package dom

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// EventAttributePrefix marks attributes that bind a named handler in markup,
// e.g. data-on-click="submit".
const EventAttributePrefix = "data-on-"

type markup struct {
	source   string
	handlers Handlers
}

// Markup parses an HTML fragment. Attributes of the form
// data-on-<event>="name" bind handlers[name] to <event> on that element. A
// name with no matching handler is an error at build time; an empty name is
// ignored.
func Markup(source string, handlers Handlers) Tree {
	return &markup{source: source, handlers: handlers}
}

func (m *markup) Build(ctx context.Context) (*View, error) {
	view := newView()
	holder := &html.Node{Type: html.ElementNode, Data: "template"}
	if err := m.mount(ctx, view, holder); err != nil {
		return nil, err
	}
	view.roots = detachChildren(holder)
	return view, nil
}

func (m *markup) mount(_ context.Context, view *View, parent *html.Node) error {
	nodes, err := ParseFragment(m.source)
	if err != nil {
		return err
	}
	for _, node := range nodes {
		if err := m.bindTree(view, node); err != nil {
			return err
		}
		parent.AppendChild(node)
	}
	return nil
}

func (m *markup) bindTree(view *View, node *html.Node) error {
	if node.Type == html.ElementNode {
		for _, attr := range node.Attr {
			if attr.Namespace != "" || !strings.HasPrefix(attr.Key, EventAttributePrefix) {
				continue
			}
			event := strings.TrimPrefix(attr.Key, EventAttributePrefix)
			name := strings.TrimSpace(attr.Val)
			if event == "" || name == "" {
				continue
			}
			handler, ok := m.handlers[name]
			if !ok || handler == nil {
				return fmt.Errorf("dom: markup references handler %q for %q that was not provided", name, event)
			}
			view.bind(node, event, handler)
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if err := m.bindTree(view, child); err != nil {
			return err
		}
	}
	return nil
}

// ParseFragment parses source as body content and returns detached nodes.
func ParseFragment(source string) ([]*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(source), body)
	if err != nil {
		return nil, fmt.Errorf("dom: parse markup: %w", err)
	}
	return nodes, nil
}
