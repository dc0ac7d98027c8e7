package chart

import (
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/codec"
	"github.com/reoring/govega/dsl"
)

// FromDocument reconstructs a composite. The variant is picked from the
// shape of doc before any field is read: a "layer" key gives a
// LayeredChart, a "facet" key a FacetedChart, anything else a Chart.
func FromDocument(doc *govega.Document) (Composite, govega.Diag, error) {
	if doc == nil {
		return nil, &govega.DiagCollector{}, &govega.ValidationError{Path: "/", Code: govega.CodeInvalidType, Expected: "object", Received: nil}
	}
	switch {
	case doc.Has("layer"):
		e, d, err := decode(LayeredChartType, doc)
		if err != nil {
			return nil, d, err
		}
		return &LayeredChart{topLevel{e: e}}, d, nil
	case doc.Has("facet"):
		e, d, err := decode(FacetedChartType, doc)
		if err != nil {
			return nil, d, err
		}
		return &FacetedChart{topLevel{e: e}}, d, nil
	}
	e, d, err := decode(ChartType, doc)
	if err != nil {
		return nil, d, err
	}
	return &Chart{topLevel{e: e}}, d, nil
}

// decode rehydrates doc as t. The row ceiling is never exported, so unless
// doc carries one it comes from the process-wide configuration.
func decode(t *dsl.Type, doc *govega.Document) (*dsl.Entity, govega.Diag, error) {
	e, d, err := t.FromDocument(doc)
	if err != nil {
		return nil, d, err
	}
	if !doc.Has("max_rows") {
		if n := govega.CurrentConfig().MaxRows; n > 0 {
			_ = e.Set("max_rows", n)
		}
	}
	return e, d, nil
}

// FromText parses JSON text and reconstructs a composite with FromDocument.
func FromText(text string) (Composite, govega.Diag, error) {
	doc, err := codec.JSON{}.Decode([]byte(text))
	if err != nil {
		return nil, &govega.DiagCollector{}, err
	}
	return FromDocument(doc)
}
