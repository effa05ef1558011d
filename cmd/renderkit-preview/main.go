package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-renderkit/internal/prompt"
	"github.com/goliatone/go-renderkit/pkg/dom"
	"github.com/goliatone/go-renderkit/pkg/kit"
	"github.com/goliatone/go-renderkit/pkg/props"
	"github.com/goliatone/go-renderkit/pkg/render/template"
	"github.com/goliatone/go-renderkit/pkg/render/template/gotemplate"
)

var errCancelled = errors.New("preview cancelled")

type options struct {
	dir         string
	name        string
	propsFile   string
	sets        setFlags
	interactive bool
	pretty      bool
	theme       string
	variant     string
	output      string
}

func main() {
	var opts options
	flag.StringVar(&opts.dir, "dir", "templates", "template directory")
	flag.StringVar(&opts.name, "name", "", "template name to render")
	flag.StringVar(&opts.propsFile, "props", "", "YAML file with default props")
	flag.Var(&opts.sets, "set", "prop override as key=value (repeatable)")
	flag.BoolVar(&opts.interactive, "interactive", false, "prompt for every prop and confirm before rendering")
	flag.BoolVar(&opts.pretty, "pretty", false, "indent the rendered markup")
	flag.StringVar(&opts.theme, "theme", "", "theme name exposed to templates")
	flag.StringVar(&opts.variant, "variant", "", "theme variant exposed to templates")
	flag.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flag.Parse()

	if strings.TrimSpace(opts.name) == "" {
		log.Fatalf("missing -name")
	}

	var driver prompt.Driver
	if opts.interactive {
		driver = prompt.NewSurvey()
	}

	var buf bytes.Buffer
	if err := run(context.Background(), opts, driver, &buf); err != nil {
		log.Fatalf("Failed to render %q: %v", opts.name, err)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Preview written to %s\n", opts.output)
	} else {
		fmt.Print(buf.String())
	}
}

// run renders the template component once and writes the container markup.
func run(ctx context.Context, opts options, driver prompt.Driver, out io.Writer) error {
	engineOpts := []gotemplate.Option{gotemplate.WithBaseDir(opts.dir)}
	if opts.theme != "" {
		engineOpts = append(engineOpts, gotemplate.WithTheme(&theme.RendererConfig{
			Theme:   opts.theme,
			Variant: opts.variant,
		}))
	}
	engine, err := gotemplate.New(engineOpts...)
	if err != nil {
		return err
	}

	defaults, err := loadDefaults(opts.propsFile)
	if err != nil {
		return err
	}
	overrides := []props.Override[props.Map]{props.Values(opts.sets.values())}
	if driver != nil {
		edited, err := prompt.EditProps(ctx, driver, props.Merge(defaults, opts.sets.values()))
		if err != nil {
			return err
		}
		ok, err := driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: "Render with these props?",
			Default: true,
		})
		if err != nil {
			return err
		}
		if !ok {
			return errCancelled
		}
		overrides = append(overrides, props.Values(edited))
	}

	component := template.Component(engine, opts.name, previewHandlers(engine, opts.name))
	res, err := kit.Create(dom.Render, component, props.Static(defaults)).Run(ctx, overrides...)
	if err != nil {
		return err
	}
	defer res.Output.Unmount()

	markup := res.Output.HTML()
	if opts.pretty {
		markup = res.Output.PrettyHTML()
	}
	_, err = io.WriteString(out, strings.TrimRight(markup, "\n")+"\n")
	return err
}
