// Package props resolves the properties a component is rendered with. Defaults
// come from a Provider that is invoked once per run, so mutable defaults such
// as spy callbacks are never shared between runs. Overrides are applied on top
// of a copy of the defaults, key by key, with later overrides winning.
package props
