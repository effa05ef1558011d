package gotemplate_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-renderkit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-renderkit/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	testsupport.AssertGolden(t, filepath.Join("testdata", "hello.golden"), result)
	if written != result {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, written)
	}
}

func TestEngine_RenderDispatchesInlineContent(t *testing.T) {
	engine := newEngine(t)

	byName, err := engine.Render("hello.tpl", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render by name: %v", err)
	}
	inline, err := engine.Render("Hello {{ name }}!", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if byName != inline {
		t.Fatalf("expected identical output, got %q and %q", byName, inline)
	}
}

func TestEngine_StructDataUsesJSONNames(t *testing.T) {
	engine := newEngine(t)

	out, err := engine.RenderString(testsupport.ButtonTemplate, testsupport.ButtonProps{Icon: "+", Text: "add"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<button data-testid="button" data-on-click="onClick"><span data-testid="icon">+</span>add</button>`
	if out != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})
	testsupport.AssertGolden(t, filepath.Join("testdata", "use-global.golden"), result)
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter to be rejected")
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})
	testsupport.AssertGolden(t, filepath.Join("testdata", "use-filter.golden"), result)
}

func TestEngine_BuiltinFilters(t *testing.T) {
	engine := newEngine(t)

	out, err := engine.RenderTemplate("builtin-filters", map[string]any{
		"title": "  spaced  ",
		"label": "  Hello World",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "[spaced]   hello World"; out != want {
		t.Fatalf("filters mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestEngine_SanitizeFilter(t *testing.T) {
	engine := newEngine(t)

	out, err := engine.RenderTemplate("sanitize", map[string]any{
		"bio": `<b>bold</b><script>alert(1)</script><i data-on-click="steal">x</i>`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<b>bold</b>") {
		t.Fatalf("expected allowed markup to survive, got %q", out)
	}
	for _, banned := range []string{"<script", "alert(1)", "data-on-click"} {
		if strings.Contains(out, banned) {
			t.Fatalf("expected %q to be stripped, got %q", banned, out)
		}
	}
}

func TestEngine_Theme(t *testing.T) {
	templatesFS := subFS(t)
	engine, err := gotemplate.New(
		gotemplate.WithFS(templatesFS),
		gotemplate.WithTheme(&theme.RendererConfig{
			Theme:   "acme",
			Variant: "dark",
			Tokens:  map[string]string{"brand": "#123456"},
			CSSVars: map[string]string{"--brand": "#123456"},
			AssetURL: func(key string) string {
				return "/themes/acme/" + key
			},
		}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("themed", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertGolden(t, filepath.Join("testdata", "themed.golden"), out)

	style, err := engine.RenderString("{{ theme.css_vars_style }}", nil)
	if err != nil {
		t.Fatalf("render style: %v", err)
	}
	if want := ":root {\n--brand: #123456;\n}"; style != want {
		t.Fatalf("css vars mismatch\nwant: %q\n got: %q", want, style)
	}
}

func TestEngine_TemplateFuncs(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithTemplateFunc(map[string]any{
		"greet": func(name string) string { return "hi " + name },
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString(`{{ greet(name) }}`, map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "hi Ada" {
		t.Fatalf("want %q, got %q", "hi Ada", out)
	}

	if _, err := gotemplate.New(gotemplate.WithTemplateFunc(map[string]any{"bad": 3})); err == nil {
		t.Fatalf("expected non-callable template func to fail")
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template to fail")
	}
}

func subFS(t *testing.T) fs.FS {
	t.Helper()
	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	return templatesFS
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(gotemplate.WithFS(subFS(t)))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
