package dom

import "errors"

var (
	// ErrNotFound is returned by Get* queries when no element matches.
	ErrNotFound = errors.New("dom: element not found")
	// ErrMultipleFound is returned by single-element queries that match more
	// than one element.
	ErrMultipleFound = errors.New("dom: multiple elements found")
	// ErrTimeout is returned by waiters whose condition never held.
	ErrTimeout = errors.New("dom: timed out waiting")
	// ErrAlreadyRemoved is returned by WaitForElementToBeRemoved when the
	// element is absent at the time the waiter is created.
	ErrAlreadyRemoved = errors.New("dom: element already removed")
	// ErrUnmounted is returned when rerendering a screen after Unmount.
	ErrUnmounted = errors.New("dom: screen is unmounted")
	// ErrNilElement is returned when rendering a nil element.
	ErrNilElement = errors.New("dom: element is nil")
)
