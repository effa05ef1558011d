// Package dom is an in-memory render target for components under test. Render
// mounts an Element into a container backed by golang.org/x/net/html nodes and
// returns a Screen that can be queried, receive synthetic events, be rerendered
// and unmounted. Waiters resolve once a condition holds, re-checking whenever
// the screen changes and on a poll interval, in the manner of DOM testing
// utilities.
//
// There is no layout, CSS or script engine. Events are dispatched to Go
// handlers bound while building the element tree, bubbling from the target to
// the base element.
package dom
