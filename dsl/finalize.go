package dsl

import (
	"sort"

	govega "github.com/reoring/govega"
)

// FinalizeContext is handed from parent to child during finalization.
// Changes a finalizer makes are seen by the descendants of its entity only.
type FinalizeContext struct {
	// Data is the data binding of the nearest enclosing chart, or
	// govega.Undefined. Channel finalizers use it for type inference.
	Data any
	// Path is the JSON Pointer of the entity being finalized.
	Path string
}

// Finalizer normalizes an entity right before export. It may mutate e (which
// is always a working copy) and fc. Errors carry paths relative to e.
type Finalizer func(e *Entity, fc *FinalizeContext) error

// Finalize returns a deep copy of e with every finalizer applied, parents
// before children. e is not modified.
func (e *Entity) Finalize() (*Entity, error) {
	w := e.Copy(true)
	if err := finalizeEntity(w, FinalizeContext{Data: govega.Undefined, Path: ""}); err != nil {
		return nil, err
	}
	return w, nil
}

func finalizeEntity(e *Entity, fc FinalizeContext) error {
	if fn := e.typ.finalize; fn != nil {
		if err := fn(e, &fc); err != nil {
			return govega.WithPathPrefix(err, fc.Path)
		}
	}
	for _, name := range e.typ.order {
		if err := finalizeValue(e.values[name], fc, govega.JoinPath(fc.Path, name)); err != nil {
			return err
		}
	}
	return nil
}

func finalizeValue(v any, fc FinalizeContext, path string) error {
	switch t := v.(type) {
	case *Entity:
		fc.Path = path
		return finalizeEntity(t, fc)
	case []any:
		for i, el := range t {
			if err := finalizeValue(el, fc, govega.IndexPath(path, i)); err != nil {
				return err
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := finalizeValue(t[k], fc, govega.JoinPath(path, k)); err != nil {
				return err
			}
		}
	}
	return nil
}
