package props

import "maps"

// Provider returns the default properties for a single run.
type Provider[P any] func() P

// Static returns a provider that yields value on every call. Map values are
// shallow-copied per call so a run that mutates its properties cannot leak
// into the next one.
func Static[P any](value P) Provider[P] {
	return func() P {
		return shallowCopy(value)
	}
}

// Fresh wraps a constructor that builds new defaults on every call. It is the
// identity on fn and exists to make call sites read the way they behave.
func Fresh[P any](fn func() P) Provider[P] {
	return fn
}

// Resolve invokes the provider, treating a nil provider as the zero value.
func (p Provider[P]) Resolve() P {
	if p == nil {
		var zero P
		return zero
	}
	return p()
}

func shallowCopy[P any](value P) P {
	switch v := any(value).(type) {
	case Map:
		if out, ok := any(v.Clone()).(P); ok {
			return out
		}
	case map[string]any:
		if out, ok := any(maps.Clone(v)).(P); ok {
			return out
		}
	}
	return value
}
