package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-renderkit/internal/prompt"
	"github.com/goliatone/go-renderkit/pkg/dom"
	"github.com/goliatone/go-renderkit/pkg/props"
	"github.com/goliatone/go-renderkit/pkg/render/template"
)

// setFlags collects repeated -set key=value flags. Later keys win.
type setFlags struct {
	keys   []string
	parsed props.Map
}

func (s *setFlags) String() string {
	return strings.Join(s.keys, ",")
}

func (s *setFlags) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	parsed, err := prompt.ParseValue(value)
	if err != nil {
		return err
	}
	if s.parsed == nil {
		s.parsed = props.Map{}
	}
	s.keys = append(s.keys, key)
	s.parsed[key] = parsed
	return nil
}

func (s *setFlags) values() props.Map {
	return s.parsed.Clone()
}

func loadDefaults(path string) (props.Map, error) {
	if strings.TrimSpace(path) == "" {
		return props.Map{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read props: %w", err)
	}
	out := props.Map{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse props %s: %w", path, err)
	}
	return out, nil
}

// previewHandlers binds a no-op handler to every data-on-* name the template
// renders with the given props, so markup written for live callbacks still
// mounts.
func previewHandlers(renderer template.TemplateRenderer, name string) template.Binder[props.Map] {
	return func(p props.Map) dom.Handlers {
		handlers := dom.Handlers{}
		markup, err := renderer.Render(name, p)
		if err != nil {
			return handlers
		}
		nodes, err := dom.ParseFragment(markup)
		if err != nil {
			return handlers
		}
		for _, node := range nodes {
			collectHandlerNames(node, handlers)
		}
		return handlers
	}
}

func collectHandlerNames(node *html.Node, into dom.Handlers) {
	if node.Type == html.ElementNode {
		for _, attr := range node.Attr {
			if strings.HasPrefix(attr.Key, dom.EventAttributePrefix) && attr.Val != "" {
				into[attr.Val] = func(*dom.Event) {}
			}
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectHandlerNames(child, into)
	}
}
