package dsl

import (
	govega "github.com/reoring/govega"
)

// checkUnion tries each alternative in declared order; the first one that
// accepts v wins and its coerced value is returned.
func checkUnion(path string, c Constraint, v any) (any, error) {
	for _, alt := range c.alts {
		if nv, err := alt.check(path, v); err == nil {
			return nv, nil
		}
	}
	return nil, noMatch(path, c, v)
}

// decodeUnion rebuilds a document value through the first alternative whose
// shape matches it. Entity alternatives match strictly (see Type.matches), so
// required keys act as discriminators. When nothing matches strictly, keys
// unknown to an alternative are ignored and the alternative recognising the
// most keys wins, earlier alternatives winning ties.
func decodeUnion(path string, c Constraint, v any, d *govega.DiagCollector) (any, error) {
	for _, alt := range c.alts {
		if nv, err := alt.decode(path, v, d, true); err == nil {
			return nv, nil
		}
	}
	var best any
	bestUnknown := -1
	for _, alt := range c.alts {
		unknown, ok := lenientFit(alt, v)
		if !ok || (bestUnknown >= 0 && unknown >= bestUnknown) {
			continue
		}
		nv, err := alt.decode(path, v, d, false)
		if err != nil {
			continue
		}
		best, bestUnknown = nv, unknown
	}
	if bestUnknown >= 0 {
		return best, nil
	}
	return nil, noMatch(path, c, v)
}

// lenientFit reports how many keys of v the entity alternative alt does not
// declare. An entity alternative fits only when its required fields are
// present and it recognises at least one key of a non-empty object.
func lenientFit(alt Constraint, v any) (int, bool) {
	if alt.kind != KindInstance {
		return 0, true
	}
	t := alt.Type()
	doc, ok := v.(*govega.Document)
	if t == nil || !ok || doc == nil {
		return 0, false
	}
	for _, n := range t.order {
		if t.fields[n].required && !doc.Has(n) {
			return 0, false
		}
	}
	unknown, total := 0, 0
	for _, k := range doc.Keys() {
		if k == govega.SchemaKey {
			continue
		}
		total++
		if _, ok := t.fields[k]; !ok {
			unknown++
		}
	}
	if total > 0 && unknown == total {
		return 0, false
	}
	return unknown, true
}

func noMatch(path string, c Constraint, v any) error {
	return &govega.ValidationError{
		Path:         path,
		Code:         govega.CodeNoMatch,
		Expected:     c.Describe(),
		Received:     v,
		Alternatives: c.describeAlternatives(),
	}
}
