package dsl

import (
	govega "github.com/reoring/govega"
)

// checkInstance accepts entities of the declared type as-is. Values (or a
// plain map) are coerced by constructing a new entity of that type, which
// validates every key.
func checkInstance(path string, c Constraint, v any) (any, error) {
	t := c.Type()
	if t == nil {
		return nil, invalidType(path, c, v)
	}
	switch x := v.(type) {
	case *Entity:
		if x != nil && x.typ == t {
			return x, nil
		}
	case Values:
		e, err := t.New(x)
		if err != nil {
			return nil, govega.WithPathPrefix(err, path)
		}
		return e, nil
	case map[string]any:
		e, err := t.New(Values(x))
		if err != nil {
			return nil, govega.WithPathPrefix(err, path)
		}
		return e, nil
	}
	return nil, invalidType(path, c, v)
}

// checkAdapter accepts Go values recognised by the adapter predicate.
func checkAdapter(path string, c Constraint, v any) (any, error) {
	if c.match != nil && v != nil && c.match(v) {
		return v, nil
	}
	return nil, invalidType(path, c, v)
}
