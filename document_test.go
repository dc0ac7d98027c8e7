package govega_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	govega "github.com/reoring/govega"
)

func TestDocument_Order(t *testing.T) {
	d := govega.NewDocument().Set("b", 1).Set("a", 2).Set("c", 3)
	d.Set("b", 4)
	if diff := cmp.Diff([]string{"b", "a", "c"}, d.Keys()); diff != "" {
		t.Fatalf("insertion order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, d.SortedKeys()); diff != "" {
		t.Fatalf("sorted order (-want +got):\n%s", diff)
	}
	d.Delete("a")
	d.Delete("missing")
	if diff := cmp.Diff([]string{"b", "c"}, d.Keys()); diff != "" {
		t.Fatalf("after delete (-want +got):\n%s", diff)
	}
	if v, _ := d.Get("b"); v != 4 {
		t.Fatalf("overwrite must keep the new value, got %v", v)
	}
	if d.Len() != 2 || d.Has("a") {
		t.Fatalf("unexpected state %v", d.Keys())
	}
}

func TestDocument_CloneIsDeep(t *testing.T) {
	inner := govega.NewDocument().Set("x", int64(1))
	d := govega.NewDocument().Set("inner", inner).Set("list", []any{govega.NewDocument().Set("y", "a")})
	c := d.Clone()
	inner.Set("x", int64(2))
	d.Set("extra", true)

	want := map[string]any{"inner": map[string]any{"x": int64(1)}, "list": []any{map[string]any{"y": "a"}}}
	if diff := cmp.Diff(want, c.Map()); diff != "" {
		t.Fatalf("clone changed with the source (-want +got):\n%s", diff)
	}
}

func TestDocumentFrom(t *testing.T) {
	d, err := govega.DocumentFrom(map[string]any{
		"z": []int{1, 2},
		"a": map[string]any{"n": json.Number("1.5"), "i": uint8(7)},
	})
	if err != nil {
		t.Fatalf("DocumentFrom: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "z"}, d.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	want := map[string]any{"z": []any{int64(1), int64(2)}, "a": map[string]any{"n": 1.5, "i": int64(7)}}
	if diff := cmp.Diff(want, d.Map()); diff != "" {
		t.Fatalf("values (-want +got):\n%s", diff)
	}

	if _, err := govega.DocumentFrom(map[string]any{"f": math.Inf(1)}); err == nil {
		t.Fatalf("expected non-finite numbers to be rejected")
	}
	if _, err := govega.DocumentFrom(map[string]any{"ch": make(chan int)}); err == nil {
		t.Fatalf("expected channels to be rejected")
	}
}

func TestNormalizeValue(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		in   any
		want any
	}{
		{nil, nil},
		{true, true},
		{3, int64(3)},
		{int32(-3), int64(-3)},
		{float32(0.5), 0.5},
		{json.Number("42"), int64(42)},
		{ts, "2024-03-01T12:00:00Z"},
		{[]string{"a"}, []any{"a"}},
	}
	for _, tc := range cases {
		got, err := govega.NormalizeValue(tc.in)
		if err != nil {
			t.Fatalf("%#v: %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%#v (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestUndefined(t *testing.T) {
	if !govega.IsUndefined(govega.Undefined) {
		t.Fatalf("Undefined must be undefined")
	}
	if govega.IsUndefined(nil) {
		t.Fatalf("nil is JSON null, not Undefined")
	}
	if govega.OrNil(govega.Undefined) != nil || govega.OrNil("x") != "x" {
		t.Fatalf("unexpected OrNil result")
	}
}
