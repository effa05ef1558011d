// Package template renders components from template sources. A
// TemplateRenderer produces markup, and Component turns that markup into a
// dom.Element whose data-on-* attributes are bound to Go handlers.
package template
