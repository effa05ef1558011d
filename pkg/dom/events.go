package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Event types dispatched by the helpers in this package. Any other name can be
// fired with Fire.
const (
	EventClick  = "click"
	EventInput  = "input"
	EventChange = "change"
	EventSubmit = "submit"
	EventFocus  = "focus"
	EventBlur   = "blur"
)

// Event is a synthetic event dispatched to bound handlers.
type Event struct {
	Type string
	// Value is written to the target's value attribute before dispatch for
	// input and change events.
	Value string
	// Detail carries arbitrary payload for custom events.
	Detail any

	Target        *Node
	CurrentTarget *Node

	defaultPrevented bool
	stopped          bool
}

// PreventDefault marks the event so Fire returns false.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops the event from reaching further ancestors.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Fire dispatches ev on target, bubbling through its ancestors, and returns
// false when a handler prevented the default action. Handlers run outside the
// screen lock, so they may rerender. Firing on a nil or detached node does
// nothing and returns false.
func Fire(target *Node, ev Event) bool {
	if target == nil || target.screen == nil {
		return false
	}
	s := target.screen
	ev.Type = normalizeEvent(ev.Type)
	ev.Target = target

	type step struct {
		node     *html.Node
		handlers []Handler
	}

	s.mu.Lock()
	if !s.mounted || !s.connectedLocked(target.raw) {
		s.mu.Unlock()
		return false
	}
	toggled := applyDefaultAction(target.raw, &ev)
	var path []step
	for cur := target.raw; cur != nil; cur = cur.Parent {
		handlers := s.bindings[cur][ev.Type]
		if len(handlers) == 0 {
			continue
		}
		path = append(path, step{node: cur, handlers: append([]Handler(nil), handlers...)})
	}
	s.commitLocked()
	s.mu.Unlock()

	for _, st := range path {
		ev.CurrentTarget = s.wrap(st.node)
		for _, handler := range st.handlers {
			handler(&ev)
		}
		if ev.stopped {
			break
		}
	}

	if ev.defaultPrevented && toggled {
		s.mu.Lock()
		toggleChecked(target.raw)
		s.commitLocked()
		s.mu.Unlock()
	}
	return !ev.defaultPrevented
}

// Click fires a click event. Clicking a checkbox or radio input toggles its
// checked attribute unless a handler prevents the default.
func Click(target *Node) bool {
	return Fire(target, Event{Type: EventClick})
}

// Input sets the target's value and fires an input event.
func Input(target *Node, value string) bool {
	return Fire(target, Event{Type: EventInput, Value: value})
}

// Change sets the target's value and fires a change event.
func Change(target *Node, value string) bool {
	return Fire(target, Event{Type: EventChange, Value: value})
}

// Submit fires a submit event.
func Submit(target *Node) bool {
	return Fire(target, Event{Type: EventSubmit})
}

// Focus fires a focus event.
func Focus(target *Node) bool {
	return Fire(target, Event{Type: EventFocus})
}

// Blur fires a blur event.
func Blur(target *Node) bool {
	return Fire(target, Event{Type: EventBlur})
}

// FireOn resolves q and fires ev on the result. The query error is returned
// unchanged.
func FireOn(q Query, ev Event) (bool, error) {
	target, err := q()
	if err != nil {
		return false, err
	}
	return Fire(target, ev), nil
}

// ClickOn resolves q and clicks the result.
func ClickOn(q Query) error {
	_, err := FireOn(q, Event{Type: EventClick})
	return err
}

func applyDefaultAction(node *html.Node, ev *Event) bool {
	switch ev.Type {
	case EventInput, EventChange:
		setAttr(node, "value", ev.Value)
	case EventClick:
		if node.Data == "input" {
			kind, _ := getAttr(node, "type")
			switch strings.ToLower(kind) {
			case "checkbox":
				toggleChecked(node)
				return true
			case "radio":
				if _, checked := getAttr(node, "checked"); !checked {
					setAttr(node, "checked", "")
					return true
				}
			}
		}
	}
	return false
}

func toggleChecked(node *html.Node) {
	if _, checked := getAttr(node, "checked"); checked {
		removeAttr(node, "checked")
		return
	}
	setAttr(node, "checked", "")
}

func normalizeEvent(event string) string {
	event = strings.ToLower(strings.TrimSpace(event))
	return strings.TrimPrefix(event, "on")
}
