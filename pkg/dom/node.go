package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Node is a handle to an element rendered on a Screen. Handles stay valid
// after a rerender but the element they point at is then detached.
type Node struct {
	raw    *html.Node
	screen *Screen
}

// Raw returns the underlying html node. Mutating it bypasses the screen's
// change notification.
func (n *Node) Raw() *html.Node {
	if n == nil {
		return nil
	}
	return n.raw
}

// Screen returns the screen the node was queried from.
func (n *Node) Screen() *Screen {
	if n == nil {
		return nil
	}
	return n.screen
}

// Tag returns the lower-case tag name, or "" for non-element nodes.
func (n *Node) Tag() string {
	if n == nil || n.raw.Type != html.ElementNode {
		return ""
	}
	return n.raw.Data
}

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	n.screen.mu.RLock()
	defer n.screen.mu.RUnlock()
	return getAttr(n.raw, strings.ToLower(name))
}

// GetAttribute returns the attribute value, or "" when absent.
func (n *Node) GetAttribute(name string) string {
	value, _ := n.Attr(name)
	return value
}

// HasAttribute reports whether the attribute is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// Value returns the value attribute, which Input and Change update.
func (n *Node) Value() string {
	return n.GetAttribute("value")
}

// Checked reports whether the checked attribute is present.
func (n *Node) Checked() bool {
	return n.HasAttribute("checked")
}

// TextContent concatenates every descendant text node.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	n.screen.mu.RLock()
	defer n.screen.mu.RUnlock()
	return textContent(n.raw)
}

// HTML returns the node's outer markup.
func (n *Node) HTML() string {
	if n == nil {
		return ""
	}
	n.screen.mu.RLock()
	defer n.screen.mu.RUnlock()
	return outerHTML(n.raw)
}

// InnerHTML returns the markup of the node's children.
func (n *Node) InnerHTML() string {
	if n == nil {
		return ""
	}
	n.screen.mu.RLock()
	defer n.screen.mu.RUnlock()
	return innerHTML(n.raw)
}

// Parent returns the parent element, or nil at the top of a detached tree.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	n.screen.mu.RLock()
	defer n.screen.mu.RUnlock()
	parent := n.raw.Parent
	if parent == nil || parent.Type != html.ElementNode {
		return nil
	}
	return n.screen.wrap(parent)
}

// Children returns the element children.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	n.screen.mu.RLock()
	defer n.screen.mu.RUnlock()
	var out []*Node
	for child := n.raw.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out = append(out, n.screen.wrap(child))
		}
	}
	return out
}

// IsConnected reports whether the node is still part of the screen's mounted
// tree.
func (n *Node) IsConnected() bool {
	if n == nil {
		return false
	}
	n.screen.mu.RLock()
	defer n.screen.mu.RUnlock()
	return n.screen.connectedLocked(n.raw)
}

// Same reports whether both handles point at the same element.
func (n *Node) Same(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.raw == other.raw
}

func (s *Screen) connectedLocked(node *html.Node) bool {
	for cur := node; cur != nil; cur = cur.Parent {
		if cur == s.base {
			return true
		}
	}
	return false
}

func textContent(node *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			return
		}
		for child := cur.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return b.String()
}

// ownText joins the direct text children of node, collapsing whitespace.
func ownText(node *html.Node) string {
	var parts []string
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			parts = append(parts, child.Data)
		}
	}
	return normalizeText(strings.Join(parts, ""))
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
