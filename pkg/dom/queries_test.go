package dom

import (
	"errors"
	"testing"
)

func listFixture() Element {
	return Markup(`
<nav aria-label="main">
  <h1 id="title" class="hero big">Inventory</h1>
  <ul data-testid="items">
    <li data-testid="item" class="row">Apples</li>
    <li data-testid="item" class="row selected">Pears</li>
  </ul>
  <a href="/next">Next page</a>
  <button aria-label="Close dialog">x</button>
  <input type="checkbox" name="agree">
  <span data-qa="custom">custom id</span>
</nav>`, nil)
}

func TestQueries_ByTestID(t *testing.T) {
	screen := mustRender(t, listFixture())

	if _, err := screen.GetByTestID("items"); err != nil {
		t.Fatalf("get items: %v", err)
	}
	if _, err := screen.GetByTestID("item"); !errors.Is(err, ErrMultipleFound) {
		t.Fatalf("expected ErrMultipleFound, got %v", err)
	}
	items, err := screen.GetAllByTestID("item")
	if err != nil || len(items) != 2 {
		t.Fatalf("expected 2 items, got %d (%v)", len(items), err)
	}
	if _, err := screen.GetByTestID("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	node, err := screen.QueryByTestID("nope")
	if node != nil || err != nil {
		t.Fatalf("query should return nil, nil for missing element; got %v, %v", node, err)
	}
}

func TestQueries_CustomTestIDAttribute(t *testing.T) {
	screen := mustRender(t, listFixture(), WithTestIDAttribute("data-qa"))
	node, err := screen.GetByTestID("custom")
	if err != nil {
		t.Fatalf("get custom: %v", err)
	}
	if node.TextContent() != "custom id" {
		t.Fatalf("unexpected node: %s", node.HTML())
	}
}

func TestQueries_ByText(t *testing.T) {
	screen := mustRender(t, listFixture())

	node, err := screen.GetByText("Pears")
	if err != nil {
		t.Fatalf("get by text: %v", err)
	}
	if node.Tag() != "li" {
		t.Fatalf("expected li, got %q", node.Tag())
	}
	if node, _ := screen.QueryByText("Bananas"); node != nil {
		t.Fatalf("expected no match for Bananas")
	}
}

func TestQueries_ByRole(t *testing.T) {
	screen := mustRender(t, listFixture())

	cases := []struct {
		role    string
		options []RoleOption
		tag     string
	}{
		{role: "heading", tag: "h1"},
		{role: "list", tag: "ul"},
		{role: "link", options: []RoleOption{Name("Next page")}, tag: "a"},
		{role: "button", options: []RoleOption{Name("Close dialog")}, tag: "button"},
		{role: "checkbox", tag: "input"},
		{role: "navigation", tag: "nav"},
	}
	for _, tc := range cases {
		node, err := screen.GetByRole(tc.role, tc.options...)
		if err != nil {
			t.Fatalf("get by role %q: %v", tc.role, err)
		}
		if node.Tag() != tc.tag {
			t.Fatalf("role %q: want %s, got %s", tc.role, tc.tag, node.Tag())
		}
	}
	if _, err := screen.GetByRole("button", Name("Open")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unnamed button, got %v", err)
	}
}

func TestQueries_BySelector(t *testing.T) {
	screen := mustRender(t, listFixture())

	cases := map[string]string{
		"#title":                  "Inventory",
		"h1.hero.big":             "Inventory",
		"li.selected":             "Pears",
		"ul li[class='row']":      "Apples",
		"nav [data-testid=items]": "Apples Pears",
		"input[name=agree]":       "",
		"ul > .row:last-child":    "Pears",
	}
	for selector, want := range cases {
		node, err := screen.GetBySelector(selector)
		if err != nil {
			t.Fatalf("selector %q: %v", selector, err)
		}
		if got := normalizeText(node.TextContent()); got != want {
			t.Fatalf("selector %q: want %q, got %q", selector, want, got)
		}
	}

	if nodes := screen.QueryAll(BySelector("[broken")); len(nodes) != 0 {
		t.Fatalf("invalid selector should match nothing")
	}
	node, err := screen.GetBySelector("nav > h1 + ul li.row:not(.selected)")
	if err != nil || node.TextContent() != "Apples" {
		t.Fatalf("sibling and negation selector: got %v %v", node, err)
	}
	if nodes := screen.QueryAll(BySelector("nav > li")); len(nodes) != 0 {
		t.Fatalf("child combinator should not reach grandchildren, got %d", len(nodes))
	}
}

func TestQueries_InvalidSelectorReportsCompileError(t *testing.T) {
	screen := mustRender(t, listFixture())

	by := BySelector("li[class=row")
	if by.Err() == nil {
		t.Fatalf("expected a compile error")
	}
	if _, err := screen.GetBySelector("li[class=row"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected the compile error rather than ErrNotFound, got %v", err)
	}
	if node, err := screen.Query(by); node != nil || err == nil {
		t.Fatalf("query should surface the compile error, got %v %v", node, err)
	}
	if _, err := screen.GetAll(by); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("get all should surface the compile error, got %v", err)
	}
}

func TestWithin_ScopesQueries(t *testing.T) {
	screen := mustRender(t, listFixture())
	list, err := screen.GetByTestID("items")
	if err != nil {
		t.Fatalf("get list: %v", err)
	}

	rows := Within(list).QueryAll(BySelector(".row"))
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows within list, got %d", len(rows))
	}
	if _, err := Within(list).GetByRole("heading"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("heading lives outside the list, got %v", err)
	}
	children := list.Children()
	if len(children) != 2 || !children[0].Parent().Same(list) {
		t.Fatalf("unexpected children: %d", len(children))
	}
}

func TestNode_Attributes(t *testing.T) {
	screen := mustRender(t, listFixture())
	heading, err := screen.GetByRole("heading")
	if err != nil {
		t.Fatalf("get heading: %v", err)
	}
	if heading.GetAttribute("ID") != "title" {
		t.Fatalf("attribute lookup should be case-insensitive")
	}
	if heading.HasAttribute("data-missing") {
		t.Fatalf("unexpected attribute")
	}
	if got := heading.HTML(); got != `<h1 id="title" class="hero big">Inventory</h1>` {
		t.Fatalf("unexpected outer html: %s", got)
	}
	if got := heading.InnerHTML(); got != "Inventory" {
		t.Fatalf("unexpected inner html: %s", got)
	}
}
