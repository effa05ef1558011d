package prompt

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-renderkit/pkg/props"
)

// EditProps asks for a new value for every key in sorted order, offering the
// current value as the default. An answer equal to the offered default keeps
// the original value and type. Other answers are decoded as YAML scalars so
// "3" becomes a number and "true" a bool. The input map is left untouched.
func EditProps(ctx context.Context, driver Driver, current props.Map) (props.Map, error) {
	out := current.Clone()
	for _, key := range out.Keys() {
		shown := displayValue(out[key])
		answer, err := driver.Input(ctx, InputConfig{
			Message: key,
			Default: shown,
		})
		if err != nil {
			return nil, fmt.Errorf("prompt: %s: %w", key, err)
		}
		if answer == shown {
			continue
		}
		value, err := ParseValue(answer)
		if err != nil {
			return nil, fmt.Errorf("prompt: %s: %w", key, err)
		}
		out[key] = value
	}
	return out, nil
}

func displayValue(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// ParseValue decodes a single YAML scalar or flow value. Blank input yields
// an empty string.
func ParseValue(raw string) (any, error) {
	if raw == "" {
		return "", nil
	}
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return nil, fmt.Errorf("parse value %q: %w", raw, err)
	}
	if value == nil {
		return raw, nil
	}
	return value, nil
}
