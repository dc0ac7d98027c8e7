package dsl

import (
	"sort"

	govega "github.com/reoring/govega"
)

// ValidateOpt controls a validation walk.
type ValidateOpt struct {
	// FailFast stops at the first problem and returns it as its typed error
	// (*govega.ValidationError, ...). Otherwise every problem is collected
	// into govega.Issues.
	FailFast bool
}

// Validate re-checks every field of e and its descendants against their
// constraints and reports required fields that are still Undefined.
func Validate(e *Entity, opt ValidateOpt) error {
	var (
		first error
		iss   govega.Issues
	)
	report := func(err error) bool {
		if first == nil {
			first = err
		}
		iss = govega.AppendIssues(iss, govega.ToIssue(err))
		return opt.FailFast
	}
	validateEntity(e, "", report)
	if first == nil {
		return nil
	}
	if opt.FailFast {
		return first
	}
	return iss
}

// Validate is Validate(e, ValidateOpt{}).
func (e *Entity) Validate() error { return Validate(e, ValidateOpt{}) }

// validateEntity reports problems through report and returns true once
// report asks to stop.
func validateEntity(e *Entity, path string, report func(error) bool) bool {
	for _, name := range e.typ.order {
		f := e.typ.fields[name]
		v := e.values[name]
		p := govega.JoinPath(path, name)
		if govega.IsUndefined(v) {
			if f.required && report(&govega.ValidationError{
				Path:     p,
				Code:     govega.CodeRequired,
				Expected: f.constraint.Describe(),
				Received: govega.Undefined,
			}) {
				return true
			}
			continue
		}
		if _, err := f.constraint.check(p, v); err != nil {
			if report(err) {
				return true
			}
			continue
		}
		if validateNested(v, p, report) {
			return true
		}
	}
	return false
}

func validateNested(v any, path string, report func(error) bool) bool {
	switch t := v.(type) {
	case *Entity:
		return validateEntity(t, path, report)
	case []any:
		for i, el := range t {
			if validateNested(el, govega.IndexPath(path, i), report) {
				return true
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if validateNested(t[k], govega.JoinPath(path, k), report) {
				return true
			}
		}
	}
	return false
}
