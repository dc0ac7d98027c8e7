package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	govega "github.com/reoring/govega"
)

// YAML renders documents as block YAML with two-space indentation.
type YAML struct{}

func (YAML) Name() string         { return "yaml" }
func (YAML) Extensions() []string { return []string{"yaml", "yml"} }

// Encode writes doc as a single YAML document.
func (YAML) Encode(doc *govega.Document, opt govega.ExportOpt) ([]byte, error) {
	if doc == nil {
		return nil, notAnObject(nil)
	}
	root, err := toYAMLNode(doc, opt)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toYAMLNode(v any, opt govega.ExportOpt) (*yaml.Node, error) {
	switch t := v.(type) {
	case *govega.Document:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range docKeys(t, opt) {
			val, _ := t.Get(k)
			vn, err := toYAMLNode(val, opt)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, vn)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range t {
			en, err := toYAMLNode(el, opt)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, en)
		}
		return n, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}, nil
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(t, 10)}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatYAMLFloat(t)}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}, nil
	}
	nv, err := govega.NormalizeValue(v)
	if err != nil {
		return nil, err
	}
	return toYAMLNode(nv, opt)
}

// formatYAMLFloat keeps a fractional part on integral floats so they read
// back as floats.
func formatYAMLFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Decode parses a single YAML document whose root is a mapping. Anchors are
// resolved and duplicate keys rejected.
func (YAML) Decode(data []byte) (*govega.Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SyntaxError{Format: "yaml", Err: errors.New("empty input")}
		}
		return nil, &SyntaxError{Format: "yaml", Err: err}
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &SyntaxError{Format: "yaml", Err: errors.New("expected a single document")}
	}
	v, err := fromYAMLNode(&root, "")
	if err != nil {
		return nil, err
	}
	doc, ok := v.(*govega.Document)
	if !ok {
		return nil, notAnObject(v)
	}
	return doc, nil
}

func fromYAMLNode(n *yaml.Node, path string) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(n.Content[0], path)
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias, path)
	case yaml.MappingNode:
		doc := govega.NewDocument()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, &SyntaxError{Format: "yaml", Err: fmt.Errorf("line %d: mapping key is not a scalar", k.Line)}
			}
			if doc.Has(k.Value) {
				return nil, duplicateKey(path, k.Value)
			}
			val, err := fromYAMLNode(v, govega.JoinPath(path, k.Value))
			if err != nil {
				return nil, err
			}
			doc.Set(k.Value, val)
		}
		return doc, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := fromYAMLNode(c, govega.IndexPath(path, i))
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return nil, &SyntaxError{Format: "yaml", Err: fmt.Errorf("line %d: unsupported node", n.Line)}
}

func yamlScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, &SyntaxError{Format: "yaml", Err: err}
		}
		return b, nil
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return i, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, &SyntaxError{Format: "yaml", Err: err}
		}
		return govega.NormalizeValue(f)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, &SyntaxError{Format: "yaml", Err: err}
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &SyntaxError{Format: "yaml", Err: fmt.Errorf("line %d: non-finite number %s", n.Line, n.Value)}
		}
		return f, nil
	default:
		return n.Value, nil
	}
}
