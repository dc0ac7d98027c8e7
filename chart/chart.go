package chart

import (
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/dsl"
)

// Chart is a single view: a mark, its encoding, transforms and selections.
type Chart struct {
	topLevel
}

// New returns a chart with mark "point" bound to data (see SetData).
func New(data any) (*Chart, error) {
	c := &Chart{topLevel: newTopLevel(ChartType)}
	if err := c.SetData(data); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(data any) *Chart {
	c, err := New(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Wrap returns a Chart backed by e, which must be of ChartType.
func Wrap(e *dsl.Entity) (*Chart, error) {
	if e == nil || e.Type() != ChartType {
		return nil, &govega.TypeError{Path: "/", Accepted: []string{ChartType.Name()}, Received: e}
	}
	return &Chart{topLevel{e: e}}, nil
}

// Copy returns a deep copy of c.
func (c *Chart) Copy() *Chart { return &Chart{topLevel{e: c.e.Copy(true)}} }

// Mark sets the mark type and merges style into the mark configuration
// (config.mark). Keys already configured and absent from style are kept.
func (c *Chart) Mark(kind string, style dsl.Values) error {
	f, _ := ChartType.Field("mark")
	if _, err := f.Validate(kind); err != nil {
		return err
	}
	if len(style) > 0 {
		if err := c.e.MergeAt([]string{"config", "mark"}, style); err != nil {
			return err
		}
	}
	return c.e.Set("mark", kind)
}

func (c *Chart) MarkArea(style dsl.Values) error   { return c.Mark("area", style) }
func (c *Chart) MarkBar(style dsl.Values) error    { return c.Mark("bar", style) }
func (c *Chart) MarkLine(style dsl.Values) error   { return c.Mark("line", style) }
func (c *Chart) MarkPoint(style dsl.Values) error  { return c.Mark("point", style) }
func (c *Chart) MarkText(style dsl.Values) error   { return c.Mark("text", style) }
func (c *Chart) MarkTick(style dsl.Values) error   { return c.Mark("tick", style) }
func (c *Chart) MarkRule(style dsl.Values) error   { return c.Mark("rule", style) }
func (c *Chart) MarkCircle(style dsl.Values) error { return c.Mark("circle", style) }
func (c *Chart) MarkSquare(style dsl.Values) error { return c.Mark("square", style) }
func (c *Chart) MarkRect(style dsl.Values) error   { return c.Mark("rect", style) }

// ConfigureMark merges style into config.mark without touching the mark.
func (c *Chart) ConfigureMark(style dsl.Values) error {
	return c.e.MergeAt([]string{"config", "mark"}, style)
}

// Encode merges channel assignments into the encoding. A string value is
// shorthand for a field definition, e.g. "x": "mean(price):Q".
func (c *Chart) Encode(channels dsl.Values) error {
	return c.e.MergeAt([]string{"encoding"}, channelValues(channels))
}

// Transform appends transforms, given as transform entities or Values.
func (c *Chart) Transform(ts ...any) error {
	cur, _ := dsl.Lookup[[]any](c.e, "transform")
	next := append(append([]any(nil), cur...), ts...)
	return c.e.Set("transform", next)
}

// Select adds (or replaces) the named selection.
func (c *Chart) Select(name string, def any) error {
	cur, _ := dsl.Lookup[map[string]any](c.e, "selection")
	next := make(map[string]any, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	next[name] = def
	return c.e.Set("selection", next)
}

// Plus layers o on top of c. Both charts are copied.
func (c *Chart) Plus(o *Chart) *LayeredChart { return Layer(c, o) }
