// Package renderkit re-exports the entry points most component tests need:
// Create builds a kit configuration rendered on an in-memory screen, and
// TemplateComponent turns a template into a component.
//
// The packages under pkg/ hold the full API: kit for configurations and runs,
// props for defaults and overrides, dom for the screen, queries, events and
// waiters, and render/template for template-backed components.
package renderkit
