package dom

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Screen is the render output of a mounted element. It owns the base element
// (<body>) and the container the element is mounted into.
type Screen struct {
	Queries

	mu sync.RWMutex

	cfg       config
	base      *html.Node
	container *html.Node
	bindings  map[*html.Node]map[string][]Handler
	changed   chan struct{}
	mounted   bool
	commits   int
}

// Render mounts ui into a fresh container and returns the screen.
func Render(ctx context.Context, ui Element, options ...Option) (*Screen, error) {
	cfg := newConfig(options)

	doc := &html.Node{Type: html.DocumentNode}
	root := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	base := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	container := &html.Node{
		Type:     html.ElementNode,
		Data:     cfg.containerTag,
		DataAtom: atom.Lookup([]byte(cfg.containerTag)),
	}
	doc.AppendChild(root)
	root.AppendChild(base)
	base.AppendChild(container)

	s := &Screen{
		cfg:       cfg,
		base:      base,
		container: container,
		changed:   make(chan struct{}),
	}
	s.Queries = Queries{screen: s, root: func() *html.Node { return base }}
	if err := s.mount(ctx, ui); err != nil {
		return nil, err
	}
	return s, nil
}

// Rerender replaces the mounted tree with ui. Nodes obtained before the call
// are detached and report IsConnected() == false.
func (s *Screen) Rerender(ctx context.Context, ui Element) error {
	s.mu.RLock()
	mounted := s.mounted
	s.mu.RUnlock()
	if !mounted {
		return ErrUnmounted
	}
	return s.mount(ctx, ui)
}

func (s *Screen) mount(ctx context.Context, ui Element) error {
	if ui == nil {
		return ErrNilElement
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	view, err := ui.Build(ctx)
	if err != nil {
		return err
	}
	if view == nil {
		view = newView()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	detachChildren(s.container)
	for _, root := range view.roots {
		if root.Parent != nil {
			root.Parent.RemoveChild(root)
		}
		s.container.AppendChild(root)
	}
	s.bindings = view.bindings
	s.mounted = true
	s.commitLocked()
	return nil
}

// Unmount removes the mounted tree. The container stays attached to the base
// element, empty. Unmounting twice is a no-op.
func (s *Screen) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return
	}
	detachChildren(s.container)
	s.bindings = nil
	s.mounted = false
	s.commitLocked()
}

// Mounted reports whether an element is currently mounted.
func (s *Screen) Mounted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mounted
}

// Commits returns how many times the tree changed: renders, rerenders,
// unmounts and dispatched events.
func (s *Screen) Commits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commits
}

// Container returns the element the component is mounted into.
func (s *Screen) Container() *Node {
	return s.wrap(s.container)
}

// BaseElement returns the <body> element that holds the container.
func (s *Screen) BaseElement() *Node {
	return s.wrap(s.base)
}

// TextContent returns the container's text content.
func (s *Screen) TextContent() string {
	return s.Container().TextContent()
}

// HTML returns the container's inner markup.
func (s *Screen) HTML() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return innerHTML(s.container)
}

// Debug writes the indented markup of the base element to the configured
// debug writer.
func (s *Screen) Debug() {
	s.mu.RLock()
	out := prettyPrint(s.base)
	w := s.cfg.debug
	s.mu.RUnlock()

	_, _ = io.WriteString(w, out)
}

// PrettyHTML returns the indented markup of the base element.
func (s *Screen) PrettyHTML() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return prettyPrint(s.base)
}

// String describes the screen in test failure messages.
func (s *Screen) String() string {
	return fmt.Sprintf("Screen(%s, mounted=%t)", s.cfg.containerTag, s.Mounted())
}

func (s *Screen) changes() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changed
}

func (s *Screen) commitLocked() {
	s.commits++
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *Screen) wrap(node *html.Node) *Node {
	if node == nil {
		return nil
	}
	return &Node{raw: node, screen: s}
}

func innerHTML(node *html.Node) string {
	var buf bytes.Buffer
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		_ = html.Render(&buf, child)
	}
	return buf.String()
}

func outerHTML(node *html.Node) string {
	var buf bytes.Buffer
	_ = html.Render(&buf, node)
	return buf.String()
}

func prettyPrint(node *html.Node) string {
	var b strings.Builder
	writePretty(&b, node, 0)
	return b.String()
}

func writePretty(b *strings.Builder, node *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch node.Type {
	case html.TextNode:
		text := strings.TrimSpace(node.Data)
		if text == "" {
			return
		}
		b.WriteString(indent)
		b.WriteString(html.EscapeString(text))
		b.WriteByte('\n')
	case html.CommentNode:
		b.WriteString(indent)
		b.WriteString("<!--" + node.Data + "-->\n")
	case html.ElementNode:
		b.WriteString(indent)
		b.WriteByte('<')
		b.WriteString(node.Data)
		for _, attr := range node.Attr {
			b.WriteByte(' ')
			b.WriteString(attr.Key)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(attr.Val))
			b.WriteByte('"')
		}
		b.WriteString(">\n")
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			writePretty(b, child, depth+1)
		}
		if !isVoid(node.Data) {
			b.WriteString(indent)
			b.WriteString("</" + node.Data + ">\n")
		}
	default:
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			writePretty(b, child, depth)
		}
	}
}

func isVoid(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "source", "track", "wbr":
		return true
	}
	return false
}
