package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	govega "github.com/reoring/govega"
)

// MsgPack is a compact binary form of a document. Maps are written in the
// same key order as JSON.
type MsgPack struct{}

func (MsgPack) Name() string         { return "msgpack" }
func (MsgPack) Extensions() []string { return []string{"msgpack", "mpk"} }

// Encode writes doc as a MessagePack map. opt.Indent is ignored.
func (MsgPack) Encode(doc *govega.Document, opt govega.ExportOpt) ([]byte, error) {
	if doc == nil {
		return nil, notAnObject(nil)
	}
	buf := &bytes.Buffer{}
	enc := msgpack.NewEncoder(buf)
	if err := writeMsgpack(enc, doc, opt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeMsgpack(enc *msgpack.Encoder, v any, opt govega.ExportOpt) error {
	switch t := v.(type) {
	case *govega.Document:
		keys := docKeys(t, opt)
		if err := enc.EncodeMapLen(len(keys)); err != nil {
			return err
		}
		for _, k := range keys {
			if err := enc.EncodeString(k); err != nil {
				return err
			}
			val, _ := t.Get(k)
			if err := writeMsgpack(enc, val, opt); err != nil {
				return err
			}
		}
		return nil
	case []any:
		if err := enc.EncodeArrayLen(len(t)); err != nil {
			return err
		}
		for _, el := range t {
			if err := writeMsgpack(enc, el, opt); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return enc.EncodeNil()
	case bool:
		return enc.EncodeBool(t)
	case string:
		return enc.EncodeString(t)
	case int64:
		return enc.EncodeInt(t)
	case float64:
		return enc.EncodeFloat64(t)
	}
	nv, err := govega.NormalizeValue(v)
	if err != nil {
		return err
	}
	return writeMsgpack(enc, nv, opt)
}

// Decode reads a MessagePack map, preserving key order.
func (MsgPack) Decode(data []byte) (*govega.Document, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	v, err := readMsgpack(dec, "")
	if err != nil {
		return nil, err
	}
	if _, err := dec.PeekCode(); !errors.Is(err, io.EOF) {
		return nil, &SyntaxError{Format: "msgpack", Err: errors.New("unexpected data after top-level value")}
	}
	doc, ok := v.(*govega.Document)
	if !ok {
		return nil, notAnObject(v)
	}
	return doc, nil
}

func readMsgpack(dec *msgpack.Decoder, path string) (any, error) {
	c, err := dec.PeekCode()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &SyntaxError{Format: "msgpack", Err: err}
	}
	switch {
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, &SyntaxError{Format: "msgpack", Err: err}
		}
		doc := govega.NewDocument()
		for i := 0; i < n; i++ {
			key, err := dec.DecodeString()
			if err != nil {
				return nil, &SyntaxError{Format: "msgpack", Err: fmt.Errorf("map key: %w", err)}
			}
			if doc.Has(key) {
				return nil, duplicateKey(path, key)
			}
			val, err := readMsgpack(dec, govega.JoinPath(path, key))
			if err != nil {
				return nil, err
			}
			doc.Set(key, val)
		}
		return doc, nil
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, &SyntaxError{Format: "msgpack", Err: err}
		}
		arr := make([]any, 0, max(n, 0))
		for i := 0; i < n; i++ {
			val, err := readMsgpack(dec, govega.IndexPath(path, i))
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	}
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, &SyntaxError{Format: "msgpack", Err: err}
	}
	switch v.(type) {
	case nil, bool, string, int64, uint64, float64:
		return govega.NormalizeValue(v)
	}
	return nil, &SyntaxError{Format: "msgpack", Err: fmt.Errorf("value of type %T has no document form", v)}
}
