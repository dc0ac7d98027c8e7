// Package codec converts declarative documents to and from bytes.
//
// Every codec preserves key order when decoding and emits keys in ascending
// order when encoding unless ExportOpt.InsertionOrder is set, so encoding is
// deterministic and encode(decode(encode(doc))) is byte-identical.
package codec

import (
	"fmt"
	"sort"
	"strings"

	govega "github.com/reoring/govega"
	"github.com/reoring/govega/i18n"
)

// Codec is a text or binary encoding of a Document.
type Codec interface {
	// Name is the format name used by ByName ("json", "yaml", "msgpack").
	Name() string
	// Extensions lists file extensions, without the dot.
	Extensions() []string
	Encode(doc *govega.Document, opt govega.ExportOpt) ([]byte, error)
	Decode(data []byte) (*govega.Document, error)
}

var registry = []Codec{JSON{}, YAML{}, MsgPack{}}

// Names returns the registered format names in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for _, c := range registry {
		out = append(out, c.Name())
	}
	sort.Strings(out)
	return out
}

// ByName returns the codec registered under name.
func ByName(name string) (Codec, error) {
	n := strings.ToLower(name)
	for _, c := range registry {
		if c.Name() == n {
			return c, nil
		}
	}
	return nil, &govega.UnsupportedFormatError{Format: name, Supported: Names()}
}

// ForExtension returns the codec handling a file extension (with or without
// the leading dot).
func ForExtension(ext string) (Codec, bool) {
	e := strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, c := range registry {
		for _, x := range c.Extensions() {
			if x == e {
				return c, true
			}
		}
	}
	return nil, false
}

// SyntaxError reports bytes that are not a well-formed document in the
// codec's format.
type SyntaxError struct {
	Format string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: invalid %s document: %v", govega.CodeParseError, e.Format, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Issue converts e into a govega.Issue.
func (e *SyntaxError) Issue() govega.Issue {
	return govega.Issue{
		Path:    "/",
		Code:    govega.CodeParseError,
		Message: i18n.T(govega.CodeParseError, nil),
		Hint:    e.Err.Error(),
		Params:  map[string]any{"format": e.Format},
	}
}

func duplicateKey(path string, key string) error {
	return &govega.ValidationError{
		Path:     govega.JoinPath(path, key),
		Code:     govega.CodeDuplicateKey,
		Expected: "unique object keys",
		Received: key,
	}
}

func notAnObject(v any) error {
	return &govega.ValidationError{Path: "/", Code: govega.CodeInvalidType, Expected: "object", Received: v}
}

func docKeys(d *govega.Document, opt govega.ExportOpt) []string {
	if opt.InsertionOrder {
		return d.Keys()
	}
	return d.SortedKeys()
}
