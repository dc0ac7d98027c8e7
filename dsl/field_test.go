package dsl_test

import (
	"errors"
	"testing"

	govega "github.com/reoring/govega"
	g "github.com/reoring/govega/dsl"
	"github.com/reoring/govega/table"
)

type color string

func field(t *testing.T, c g.Constraint) *g.Field {
	t.Helper()
	typ := g.Object("Holder").Field("v", c).MustBuild()
	f, ok := typ.Field("v")
	if !ok {
		t.Fatalf("field v not declared")
	}
	return f
}

func TestField_Primitives_Coerce(t *testing.T) {
	cases := []struct {
		name string
		c    g.Constraint
		in   any
		want any
	}{
		{"string", g.String(), "a", "a"},
		{"named string", g.String(), color("red"), "red"},
		{"number from int", g.Number(), 3, float64(3)},
		{"number from float32", g.Number(), float32(1.5), float64(1.5)},
		{"integer from int", g.Integer(), 7, int64(7)},
		{"integer from integral float", g.Integer(), 7.0, int64(7)},
		{"boolean", g.Boolean(), true, true},
		{"null", g.Null(), nil, nil},
		{"enum", g.Enum("a", "b"), "b", "b"},
	}
	for _, tc := range cases {
		got, err := field(t, tc.c).Validate(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %#v want %#v", tc.name, got, tc.want)
		}
	}
}

func TestField_Primitives_Reject(t *testing.T) {
	cases := []struct {
		name string
		c    g.Constraint
		in   any
		code string
	}{
		{"string", g.String(), 1, govega.CodeInvalidType},
		{"number", g.Number(), "1", govega.CodeInvalidType},
		{"integer", g.Integer(), 1.5, govega.CodeInvalidType},
		{"boolean", g.Boolean(), "true", govega.CodeInvalidType},
		{"null", g.Null(), 0, govega.CodeInvalidType},
		{"enum literal", g.Enum("a", "b"), "c", govega.CodeInvalidEnum},
		{"enum kind", g.Enum("a", "b"), 1, govega.CodeInvalidType},
		{"any func", g.Any(), func() {}, govega.CodeInvalidType},
	}
	for _, tc := range cases {
		_, err := field(t, tc.c).Validate(tc.in)
		ve, ok := govega.AsValidationError(err)
		if !ok {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if ve.Code != tc.code || ve.Path != "/v" {
			t.Fatalf("%s: unexpected error %+v", tc.name, ve)
		}
	}
}

func TestField_UndefinedAlwaysAccepted(t *testing.T) {
	for _, c := range []g.Constraint{g.String(), g.Integer(), g.Enum("x"), g.Null()} {
		got, err := field(t, c).Validate(govega.Undefined)
		if err != nil || !govega.IsUndefined(got) {
			t.Fatalf("%s: got %v err=%v", c.Describe(), got, err)
		}
	}
}

func TestField_ArrayAndMap(t *testing.T) {
	f := field(t, g.ArrayOf(g.Number()))
	got, err := f.Validate([]int{1, 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	arr := got.([]any)
	if len(arr) != 2 || arr[1] != float64(2) {
		t.Fatalf("unexpected array: %#v", arr)
	}

	_, err = f.Validate([]any{1, "x"})
	ve, ok := govega.AsValidationError(err)
	if !ok || ve.Path != "/v/1" {
		t.Fatalf("expected error at /v/1, got %v", err)
	}

	m := field(t, g.MapOf(g.String()))
	_, err = m.Validate(map[string]any{"a": "x", "b": 2})
	ve, ok = govega.AsValidationError(err)
	if !ok || ve.Path != "/v/b" {
		t.Fatalf("expected error at /v/b, got %v", err)
	}
}

func TestField_NoSideEffects(t *testing.T) {
	f := field(t, g.ArrayOf(g.Integer()))
	in := []any{1, 2}
	if _, err := f.Validate(in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if in[0] != 1 {
		t.Fatalf("input mutated: %#v", in)
	}
}

func TestBuild_RejectsBadDeclarations(t *testing.T) {
	_, err := g.Object("Bad").
		Field("a", g.String()).
		Field("a", g.Number()).
		Build()
	if err == nil {
		t.Fatalf("expected duplicate field error")
	}

	_, err = g.Object("Bad").
		Field("n", g.Integer()).Default("x").
		Build()
	var ve *govega.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected invalid default to surface a ValidationError, got %v", err)
	}

	_, err = g.Object("Bad").Field("a", g.String()).Require("b").Build()
	if err == nil {
		t.Fatalf("expected error for requiring an undeclared field")
	}
}

func TestField_AdaptersRejectTypedNil(t *testing.T) {
	if _, err := field(t, g.Table()).Validate((*table.Rows)(nil)); err == nil {
		t.Fatalf("a nil table must be rejected")
	}
	if _, err := field(t, g.Table()).Validate(table.NewRows([]string{"a"})); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := field(t, g.Expression()).Validate((*nilExpr)(nil)); err == nil {
		t.Fatalf("a nil expression must be rejected")
	}
}

type nilExpr struct{}

func (*nilExpr) Expr() string { return "" }
