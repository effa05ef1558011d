package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// By describes how to match elements. A By built from invalid input carries
// the error, which the Get and Query family report instead of matching.
type By struct {
	desc  string
	match func(cfg config, node *html.Node) bool
	err   error
}

func (b By) String() string {
	return b.desc
}

// ByTestID matches elements whose test id attribute equals id.
func ByTestID(id string) By {
	return By{
		desc: fmt.Sprintf("testid=%q", id),
		match: func(cfg config, node *html.Node) bool {
			value, ok := getAttr(node, cfg.testIDAttr)
			return ok && value == id
		},
	}
}

// ByText matches elements whose own text, with whitespace collapsed, equals
// text. Text inside child elements does not count toward the parent.
func ByText(text string) By {
	want := normalizeText(text)
	return By{
		desc: fmt.Sprintf("text=%q", want),
		match: func(_ config, node *html.Node) bool {
			if node.Data == "script" || node.Data == "style" {
				return false
			}
			return ownText(node) == want
		},
	}
}

// RoleOption refines ByRole.
type RoleOption func(*roleQuery)

type roleQuery struct {
	name    string
	hasName bool
}

// Name restricts ByRole to elements whose accessible name equals name. The
// accessible name is aria-label when present, otherwise the text content.
func Name(name string) RoleOption {
	return func(q *roleQuery) {
		q.name = normalizeText(name)
		q.hasName = true
	}
}

// ByRole matches elements by explicit role attribute or implicit role.
func ByRole(role string, options ...RoleOption) By {
	q := roleQuery{}
	for _, opt := range options {
		if opt != nil {
			opt(&q)
		}
	}
	role = strings.ToLower(strings.TrimSpace(role))
	desc := fmt.Sprintf("role=%q", role)
	if q.hasName {
		desc += fmt.Sprintf(" name=%q", q.name)
	}
	return By{
		desc: desc,
		match: func(_ config, node *html.Node) bool {
			if elementRole(node) != role {
				return false
			}
			if !q.hasName {
				return true
			}
			return accessibleName(node) == q.name
		},
	}
}

// BySelector matches a CSS selector group as compiled by cascadia. Combinators
// are evaluated against the whole document, so a scoped query still sees
// ancestors outside its root, like querySelectorAll.
func BySelector(selector string) By {
	by := By{desc: fmt.Sprintf("selector=%q", selector)}
	compiled, err := cascadia.Compile(selector)
	if err != nil {
		by.err = fmt.Errorf("dom: invalid selector %q: %w", selector, err)
		return by
	}
	by.match = func(_ config, node *html.Node) bool {
		return compiled.Match(node)
	}
	return by
}

// Err reports why by cannot match anything, or nil.
func (b By) Err() error {
	return b.err
}

// Query resolves one element on demand. Element accessors are usually Query
// values so they re-resolve against the current tree on every call.
type Query func() (*Node, error)

// Queries runs matchers against a subtree of a screen.
type Queries struct {
	screen *Screen
	root   func() *html.Node
}

// Within scopes queries to the subtree rooted at node.
func Within(node *Node) Queries {
	if node == nil {
		return Queries{}
	}
	raw := node.raw
	return Queries{screen: node.screen, root: func() *html.Node { return raw }}
}

// QueryAll returns every match in document order. It never fails; an invalid
// By matches nothing.
func (q Queries) QueryAll(by By) []*Node {
	if q.screen == nil || q.root == nil || by.match == nil || by.err != nil {
		return nil
	}
	q.screen.mu.RLock()
	defer q.screen.mu.RUnlock()

	var out []*Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && by.match(q.screen.cfg, node) {
			out = append(out, q.screen.wrap(node))
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	root := q.root()
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return out
}

// GetAll returns every match, failing with ErrNotFound when there is none.
func (q Queries) GetAll(by By) ([]*Node, error) {
	if by.err != nil {
		return nil, by.err
	}
	nodes := q.QueryAll(by)
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, by)
	}
	return nodes, nil
}

// Query returns the single match, nil when absent, and ErrMultipleFound when
// more than one element matches.
func (q Queries) Query(by By) (*Node, error) {
	if by.err != nil {
		return nil, by.err
	}
	nodes := q.QueryAll(by)
	switch len(nodes) {
	case 0:
		return nil, nil
	case 1:
		return nodes[0], nil
	default:
		return nil, fmt.Errorf("%w: %d matches for %s", ErrMultipleFound, len(nodes), by)
	}
}

// Get returns the single match, failing with ErrNotFound or ErrMultipleFound.
func (q Queries) Get(by By) (*Node, error) {
	node, err := q.Query(by)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, by)
	}
	return node, nil
}

// Getter returns a Query bound to by.
func (q Queries) Getter(by By) Query {
	return func() (*Node, error) {
		return q.Get(by)
	}
}

// GetByTestID is Get(ByTestID(id)).
func (q Queries) GetByTestID(id string) (*Node, error) {
	return q.Get(ByTestID(id))
}

// QueryByTestID is Query(ByTestID(id)).
func (q Queries) QueryByTestID(id string) (*Node, error) {
	return q.Query(ByTestID(id))
}

// GetAllByTestID is GetAll(ByTestID(id)).
func (q Queries) GetAllByTestID(id string) ([]*Node, error) {
	return q.GetAll(ByTestID(id))
}

// GetByText is Get(ByText(text)).
func (q Queries) GetByText(text string) (*Node, error) {
	return q.Get(ByText(text))
}

// QueryByText is Query(ByText(text)).
func (q Queries) QueryByText(text string) (*Node, error) {
	return q.Query(ByText(text))
}

// GetByRole is Get(ByRole(role, options...)).
func (q Queries) GetByRole(role string, options ...RoleOption) (*Node, error) {
	return q.Get(ByRole(role, options...))
}

// GetBySelector is Get(BySelector(selector)).
func (q Queries) GetBySelector(selector string) (*Node, error) {
	return q.Get(BySelector(selector))
}

func elementRole(node *html.Node) string {
	if role, ok := getAttr(node, "role"); ok {
		if fields := strings.Fields(role); len(fields) > 0 {
			return strings.ToLower(fields[0])
		}
	}
	switch node.Data {
	case "button":
		return "button"
	case "a":
		if _, ok := getAttr(node, "href"); ok {
			return "link"
		}
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return "heading"
	case "textarea":
		return "textbox"
	case "select":
		return "combobox"
	case "ul", "ol":
		return "list"
	case "li":
		return "listitem"
	case "img":
		return "img"
	case "nav":
		return "navigation"
	case "main":
		return "main"
	case "form":
		return "form"
	case "input":
		kind, _ := getAttr(node, "type")
		switch strings.ToLower(kind) {
		case "", "text", "email", "tel", "url", "search":
			return "textbox"
		case "checkbox":
			return "checkbox"
		case "radio":
			return "radio"
		case "button", "submit", "reset":
			return "button"
		case "number":
			return "spinbutton"
		}
	}
	return ""
}

func accessibleName(node *html.Node) string {
	if label, ok := getAttr(node, "aria-label"); ok {
		return normalizeText(label)
	}
	if node.Data == "input" {
		if value, ok := getAttr(node, "value"); ok {
			return normalizeText(value)
		}
	}
	return normalizeText(textContent(node))
}
