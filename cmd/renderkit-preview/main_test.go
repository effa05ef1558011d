package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-renderkit/internal/prompt"
	"github.com/goliatone/go-renderkit/pkg/props"
)

const cardTemplate = `<div class="card" data-testid="card" data-on-click="open">` +
	`<h2>{{ title }}</h2>{% if count %}<span>{{ count }}</span>{% endif %}</div>`

func writeFixtures(t *testing.T) (dir, propsFile string) {
	t.Helper()
	dir = t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "card.tpl"), []byte(cardTemplate), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	propsFile = filepath.Join(dir, "props.yaml")
	if err := os.WriteFile(propsFile, []byte("title: Hello\ncount: 2\n"), 0o644); err != nil {
		t.Fatalf("write props: %v", err)
	}
	return dir, propsFile
}

func TestRun_DefaultsAndOverrides(t *testing.T) {
	dir, propsFile := writeFixtures(t)
	opts := options{dir: dir, name: "card", propsFile: propsFile}
	if err := opts.sets.Set("title=World"); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out bytes.Buffer
	if err := run(context.Background(), opts, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := `<div class="card" data-testid="card" data-on-click="open"><h2>World</h2><span>2</span></div>` + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Interactive(t *testing.T) {
	dir, propsFile := writeFixtures(t)
	opts := options{dir: dir, name: "card", propsFile: propsFile}
	driver := prompt.NewScripted("0", "Prompted", "")

	var out bytes.Buffer
	if err := run(context.Background(), opts, driver, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := `<div class="card" data-testid="card" data-on-click="open"><h2>Prompted</h2></div>` + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_InteractiveCancelled(t *testing.T) {
	dir, propsFile := writeFixtures(t)
	opts := options{dir: dir, name: "card", propsFile: propsFile}
	driver := prompt.NewScripted("", "", "false")

	var out bytes.Buffer
	if err := run(context.Background(), opts, driver, &out); !errors.Is(err, errCancelled) {
		t.Fatalf("expected errCancelled, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("cancelled preview wrote output: %q", out.String())
	}
	if diff := cmp.Diff([]string{"count", "title", "Render with these props?"}, driver.Asked()); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_MissingTemplate(t *testing.T) {
	dir, _ := writeFixtures(t)
	if err := run(context.Background(), options{dir: dir, name: "nope"}, nil, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected missing template to fail")
	}
}

func TestSetFlags(t *testing.T) {
	var sets setFlags
	for _, raw := range []string{"text=hi", "count=3", "text=bye"} {
		if err := sets.Set(raw); err != nil {
			t.Fatalf("set %q: %v", raw, err)
		}
	}
	if err := sets.Set("novalue"); err == nil {
		t.Fatalf("expected malformed flag to fail")
	}

	if diff := cmp.Diff(props.Map{"text": "bye", "count": 3}, sets.values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if got := sets.String(); got != "text,count,text" {
		t.Fatalf("string: got %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	_, propsFile := writeFixtures(t)

	got, err := loadDefaults(propsFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(props.Map{"title": "Hello", "count": 2}, got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	empty, err := loadDefaults("")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty defaults, got %v %v", empty, err)
	}
}
