package props

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Override mutates a copy of the resolved defaults. Overrides run in order, so
// a later override wins over an earlier one for the same key.
type Override[P any] func(*P)

// Apply copies base and applies overrides to the copy. Nil overrides are
// skipped. base itself is never modified, including map-typed properties.
func Apply[P any](base P, overrides ...Override[P]) P {
	out := shallowCopy(base)
	for _, override := range overrides {
		if override == nil {
			continue
		}
		override(&out)
	}
	return out
}

// Set wraps a mutation closure as an override.
func Set[P any](fn func(*P)) Override[P] {
	return fn
}

// Fields returns an override that copies every non-zero field of partial onto
// the target. For struct properties this is the Partial<P> contract: a zero
// field means "not provided" and keeps the default. Nested struct values are
// merged field by field, while maps, slices, pointers, funcs and interfaces
// are replaced whole so a run never writes through into shared defaults. Map
// properties are merged key by key. Pointer-to-struct properties are merged
// into a fresh copy of the target's pointee. Any other kind replaces the
// target when partial is non-zero.
func Fields[P any](partial P) Override[P] {
	return func(target *P) {
		if target == nil {
			return
		}
		if m, ok := any(partial).(Map); ok {
			current, _ := any(*target).(Map)
			if merged, ok := any(Merge(current, m)).(P); ok {
				*target = merged
			}
			return
		}

		src := reflect.ValueOf(partial)
		dst := reflect.ValueOf(target).Elem()
		switch {
		case src.Kind() == reflect.Pointer:
			if src.IsNil() {
				return
			}
			if dst.IsNil() || src.Elem().Kind() != reflect.Struct {
				dst.Set(src)
				return
			}
			fresh := reflect.New(src.Type().Elem())
			fresh.Elem().Set(dst.Elem())
			mergeFields(fresh.Interface(), src.Interface())
			dst.Set(fresh)
		case src.Kind() == reflect.Struct:
			mergeFields(target, partial)
		case src.IsValid() && !src.IsZero():
			dst.Set(src)
		}
	}
}

// mergeFields overlays the exported non-zero fields of src onto dst, a
// pointer to a struct of the same type. Both sides are guaranteed to share a
// type, so an error can only come from a broken invariant.
func mergeFields(dst, src any) {
	if err := mergo.Merge(dst, src, mergo.WithOverride, mergo.WithTransformers(replaceReferences{})); err != nil {
		panic(fmt.Errorf("props: merge fields: %w", err))
	}
}

// replaceReferences swaps reference-kinded fields instead of letting mergo
// descend into them, which would write into maps and pointees owned by the
// defaults.
type replaceReferences struct{}

func (replaceReferences) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	switch typ.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return func(dst, src reflect.Value) error {
			if dst.CanSet() && !src.IsNil() {
				dst.Set(src)
			}
			return nil
		}
	}
	return nil
}

// Values returns an override merging values into a Map target.
func Values(values Map) Override[Map] {
	return func(target *Map) {
		*target = Merge(*target, values)
	}
}

// YAML parses doc and returns an override that decodes it onto the target.
// Only keys present in the document overwrite the defaults. The document is
// decoded once against a zero value up front so type mismatches are reported
// here rather than during a run. Map targets are cloned and pointer targets
// are copied to a fresh pointee before decoding, so the provider's value is
// never written through. A decode that still fails during a run panics, since
// the document already passed validation.
func YAML[P any](doc []byte) (Override[P], error) {
	var node yaml.Node
	if err := yaml.Unmarshal(doc, &node); err != nil {
		return nil, fmt.Errorf("props: parse yaml: %w", err)
	}
	if node.Kind == 0 {
		return func(*P) {}, nil
	}

	var zero P
	if err := node.Decode(&zero); err != nil {
		return nil, fmt.Errorf("props: decode yaml: %w", err)
	}

	return func(target *P) {
		if target == nil {
			return
		}
		if m, ok := any(*target).(Map); ok {
			*target = any(m.Clone()).(P)
		} else if dst := reflect.ValueOf(target).Elem(); dst.Kind() == reflect.Pointer && !dst.IsNil() {
			fresh := reflect.New(dst.Type().Elem())
			fresh.Elem().Set(dst.Elem())
			dst.Set(fresh)
		}
		if err := node.Decode(target); err != nil {
			panic(fmt.Errorf("props: decode yaml: %w", err))
		}
	}, nil
}

// MustYAML mirrors YAML but panics on error, for fixtures declared at package
// level.
func MustYAML[P any](doc []byte) Override[P] {
	override, err := YAML[P](doc)
	if err != nil {
		panic(err)
	}
	return override
}
