package chart

import (
	"fmt"

	govega "github.com/reoring/govega"
	"github.com/reoring/govega/dsl"
	"github.com/reoring/govega/expr"
	vl "github.com/reoring/govega/vegalite"
)

// finalizeComposite prepares the data binding of a composite for export and
// hands it down to the children:
//
//   - a Frame is replaced by its concrete table, and its calculated columns
//     and row filters are appended to the transform list;
//   - a table with more rows than max_rows fails the export.
//
// A composite without data keeps the binding inherited from its parent.
func finalizeComposite(e *dsl.Entity, fc *dsl.FinalizeContext) error {
	if f, ok := e.Value("data").(*expr.Frame); ok {
		if err := decomposeFrame(e, f); err != nil {
			return err
		}
	}
	data := e.Value("data")
	if t, ok := data.(govega.Table); ok {
		limit := maxRows(e)
		if n := t.Len(); n > limit {
			return &govega.RowLimitExceededError{Path: "/data", Limit: limit, Actual: n}
		}
	}
	if !govega.IsUndefined(data) {
		fc.Data = data
	}
	return nil
}

func decomposeFrame(e *dsl.Entity, f *expr.Frame) error {
	t, err := f.Resolve()
	if err != nil {
		return fmt.Errorf("chart: resolve frame: %w", err)
	}
	transforms, _ := dsl.Lookup[[]any](e, "transform")
	transforms = append([]any(nil), transforms...)
	for _, c := range f.Calculated() {
		ct, err := vl.CalculateTransform.New(dsl.Values{"calculate": c.Expr, "as": c.As})
		if err != nil {
			return govega.WithPathPrefix(err, govega.IndexPath("/transform", len(transforms)))
		}
		transforms = append(transforms, ct)
	}
	switch filters := f.Filters(); len(filters) {
	case 0:
	case 1:
		ft, err := vl.FilterTransform.New(dsl.Values{"filter": filters[0]})
		if err != nil {
			return govega.WithPathPrefix(err, govega.IndexPath("/transform", len(transforms)))
		}
		transforms = append(transforms, ft)
	default:
		preds := make([]any, len(filters))
		for i, x := range filters {
			preds[i] = x
		}
		ft, err := vl.FilterTransform.New(dsl.Values{"filter": preds})
		if err != nil {
			return govega.WithPathPrefix(err, govega.IndexPath("/transform", len(transforms)))
		}
		transforms = append(transforms, ft)
	}
	var data any = govega.Undefined
	if t != nil {
		data = t
	}
	vals := dsl.Values{"data": data}
	if len(transforms) > 0 {
		vals["transform"] = transforms
	}
	return e.Update(vals)
}

func maxRows(e *dsl.Entity) int {
	if n, ok := dsl.Lookup[int64](e, "max_rows"); ok {
		return int(n)
	}
	return govega.CurrentConfig().MaxRows
}
