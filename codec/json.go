package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	govega "github.com/reoring/govega"
)

// JSON is the canonical text form of a document.
type JSON struct{}

func (JSON) Name() string         { return "json" }
func (JSON) Extensions() []string { return []string{"json", "vl.json"} }

// Encode writes doc as JSON. Strings are not HTML-escaped so expressions
// such as "datum.a < 3" stay readable.
func (JSON) Encode(doc *govega.Document, opt govega.ExportOpt) ([]byte, error) {
	if doc == nil {
		return nil, notAnObject(nil)
	}
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, doc, opt); err != nil {
		return nil, err
	}
	if opt.Indent == "" {
		return buf.Bytes(), nil
	}
	out := &bytes.Buffer{}
	if err := json.Indent(out, buf.Bytes(), "", opt.Indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any, opt govega.ExportOpt) error {
	switch t := v.(type) {
	case *govega.Document:
		buf.WriteByte('{')
		for i, k := range docKeys(t, opt) {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := marshalScalar(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			val, _ := t.Get(k)
			if err := writeJSON(buf, val, opt); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i, el := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, el, opt); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case float64:
		if t == 0 {
			// -0 would decode back as the integer 0.
			buf.WriteByte('0')
			return nil
		}
		b, err := marshalScalar(t)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	case nil, bool, string, int64:
		b, err := marshalScalar(t)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
	nv, err := govega.NormalizeValue(v)
	if err != nil {
		return err
	}
	return writeJSON(buf, nv, opt)
}

func marshalScalar(v any) ([]byte, error) {
	return json.MarshalWithOption(v, json.DisableHTMLEscape())
}

// Decode parses a JSON object. Key order is preserved and duplicate keys
// are rejected.
func (JSON) Decode(data []byte) (*govega.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := readJSON(dec, "")
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &SyntaxError{Format: "json", Err: errors.New("unexpected data after top-level value")}
	}
	doc, ok := v.(*govega.Document)
	if !ok {
		return nil, notAnObject(v)
	}
	return doc, nil
}

func readJSON(dec *json.Decoder, path string) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &SyntaxError{Format: "json", Err: err}
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			doc := govega.NewDocument()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, &SyntaxError{Format: "json", Err: err}
				}
				key, ok := kt.(string)
				if !ok {
					return nil, &SyntaxError{Format: "json", Err: fmt.Errorf("object key %v is not a string", kt)}
				}
				if doc.Has(key) {
					return nil, duplicateKey(path, key)
				}
				val, err := readJSON(dec, govega.JoinPath(path, key))
				if err != nil {
					return nil, err
				}
				doc.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, &SyntaxError{Format: "json", Err: err}
			}
			return doc, nil
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := readJSON(dec, govega.IndexPath(path, len(arr)))
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, &SyntaxError{Format: "json", Err: err}
			}
			return arr, nil
		}
		return nil, &SyntaxError{Format: "json", Err: fmt.Errorf("unexpected delimiter %v", t)}
	case json.Number:
		return govega.NormalizeValue(t)
	case string, bool, nil, float64:
		return t, nil
	}
	return nil, &SyntaxError{Format: "json", Err: fmt.Errorf("unexpected token %v", tok)}
}
