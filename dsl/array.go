package dsl

import (
	"reflect"
	"sort"

	govega "github.com/reoring/govega"
)

// checkArray accepts any slice or array and stores a fresh []any whose
// elements were each checked against the element constraint.
func checkArray(path string, c Constraint, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, invalidType(path, c, v)
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return []any{}, nil
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		nv, err := c.elem.check(govega.IndexPath(path, i), rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return out, nil
}

// checkMap accepts string-keyed maps and *govega.Document. Keys are visited in
// ascending order so the reported error is deterministic.
func checkMap(path string, c Constraint, v any) (any, error) {
	src := map[string]any{}
	switch t := v.(type) {
	case *govega.Document:
		if t == nil {
			return nil, invalidType(path, c, v)
		}
		for _, k := range t.Keys() {
			src[k], _ = t.Get(k)
		}
	default:
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return nil, invalidType(path, c, v)
		}
		iter := rv.MapRange()
		for iter.Next() {
			src[iter.Key().String()] = iter.Value().Interface()
		}
	}
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]any, len(src))
	for _, k := range keys {
		nv, err := c.elem.check(govega.JoinPath(path, k), src[k])
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}

func decodeArray(path string, c Constraint, v any, d *govega.DiagCollector, strict bool) (any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, invalidType(path, c, v)
	}
	out := make([]any, len(arr))
	for i, el := range arr {
		nv, err := c.elem.decode(govega.IndexPath(path, i), el, d, strict)
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return out, nil
}

func decodeMap(path string, c Constraint, v any, d *govega.DiagCollector, strict bool) (any, error) {
	doc, ok := v.(*govega.Document)
	if !ok || doc == nil {
		return nil, invalidType(path, c, v)
	}
	out := make(map[string]any, doc.Len())
	for _, k := range doc.Keys() {
		el, _ := doc.Get(k)
		nv, err := c.elem.decode(govega.JoinPath(path, k), el, d, strict)
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}
