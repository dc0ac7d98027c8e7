package dsl

import (
	"encoding/json"
	"math"
	"reflect"

	govega "github.com/reoring/govega"
)

func invalidType(path string, c Constraint, v any) error {
	return &govega.ValidationError{Path: path, Code: govega.CodeInvalidType, Expected: c.Describe(), Received: v}
}

func checkString(path string, c Constraint, v any) (any, error) {
	if s, ok := asString(v); ok {
		return s, nil
	}
	return nil, invalidType(path, c, v)
}

func checkNumber(path string, c Constraint, v any) (any, error) {
	if f, ok := asFloat(v); ok {
		return f, nil
	}
	return nil, invalidType(path, c, v)
}

func checkInteger(path string, c Constraint, v any) (any, error) {
	if i, ok := asInt(v); ok {
		return i, nil
	}
	return nil, invalidType(path, c, v)
}

func checkBoolean(path string, c Constraint, v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return nil, invalidType(path, c, v)
}

func checkNull(path string, c Constraint, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return nil, invalidType(path, c, v)
}

func checkEnum(path string, c Constraint, v any) (any, error) {
	s, ok := asString(v)
	if !ok {
		return nil, invalidType(path, c, v)
	}
	for _, e := range c.enum {
		if e == s {
			return s, nil
		}
	}
	return nil, &govega.ValidationError{Path: path, Code: govega.CodeInvalidEnum, Expected: c.Describe(), Received: v}
}

func checkAny(path string, c Constraint, v any) (any, error) {
	if govega.IsUndefined(v) {
		return nil, invalidType(path, c, v)
	}
	nv, err := govega.NormalizeValue(v)
	if err != nil {
		return nil, invalidType(path, c, v)
	}
	return nv, nil
}

// asString accepts string and named string types. Named types that are
// expressions are left to the expression constraint.
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if _, ok := v.(govega.Expression); ok {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// asFloat accepts every finite numeric representation, including json.Number.
func asFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case json.Number:
		x, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = x
	default:
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			return 0, false
		}
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return float64(rv.Uint()), true
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		default:
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// asInt accepts integers and integral floats that fit into int64.
func asInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, true
		}
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() {
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int(), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if u := rv.Uint(); u <= math.MaxInt64 {
				return int64(u), true
			}
			return 0, false
		}
	}
	f, ok := asFloat(v)
	if !ok || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
