package govega

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/govega/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType       = "invalid_type"
	CodeInvalidEnum       = "invalid_enum"
	CodeNoMatch           = "no_match"
	CodeRequired          = "required"
	CodeUnknownField      = "unknown_field"
	CodeDuplicateKey      = "duplicate_key"
	CodeParseError        = "parse_error"
	CodeRowLimitExceeded  = "row_limit_exceeded"
	CodeUnsupportedFormat = "unsupported_format"
	CodeUnsupportedData   = "unsupported_data"
	CodeSchemaVersion     = "schema_version_mismatch"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /encoding/x/type).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected constraint, accepted kinds, etc.
	// Params carries structured parameters (e.g., {"limit":5000, "actual":5001})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, displayPath(it.Path))
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ToIssue converts any error into a single Issue. Errors of this package keep
// their code and path; anything else becomes a parse_error at the root.
func ToIssue(err error) Issue {
	if ie, ok := err.(interface{ Issue() Issue }); ok {
		return ie.Issue()
	}
	return Issue{Path: "/", Code: CodeParseError, Message: err.Error()}
}

// ValidationError reports a value that does not satisfy a field constraint.
type ValidationError struct {
	Path     string
	Code     string // invalid_type, invalid_enum, no_match, required or duplicate_key
	Expected string // Human-readable constraint description.
	Received any
	// Alternatives lists every union alternative that was attempted, in
	// declaration order.
	Alternatives []string
}

func (e *ValidationError) Error() string {
	code := e.Code
	if code == "" {
		code = CodeInvalidType
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s at %s", code, displayPath(e.Path))
	switch code {
	case CodeRequired:
		fmt.Fprintf(b, ": required property missing, expected %s", e.Expected)
	case CodeDuplicateKey:
		b.WriteString(": duplicate key")
	default:
		if len(e.Alternatives) > 0 {
			fmt.Fprintf(b, ": expected one of [%s], got %s", strings.Join(e.Alternatives, ", "), describeValue(e.Received))
		} else {
			fmt.Fprintf(b, ": expected %s, got %s", e.Expected, describeValue(e.Received))
		}
	}
	return b.String()
}

// Issue converts e into an Issue.
func (e *ValidationError) Issue() Issue {
	code := e.Code
	if code == "" {
		code = CodeInvalidType
	}
	return Issue{
		Path:    displayPath(e.Path),
		Code:    code,
		Message: i18n.T(code, map[string]string{"expected": e.Expected}),
		Hint:    "expected " + e.Expected,
		Params:  map[string]any{"expected": e.Expected, "received": e.Received, "alternatives": e.Alternatives},
	}
}

// UnknownFieldError reports construction or assignment of a field that the
// entity type does not declare.
type UnknownFieldError struct {
	Path  string
	Type  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s at %s: %q is not a field of %s", CodeUnknownField, displayPath(e.Path), e.Field, e.Type)
}

// Issue converts e into an Issue.
func (e *UnknownFieldError) Issue() Issue {
	return Issue{
		Path:    displayPath(e.Path),
		Code:    CodeUnknownField,
		Message: i18n.T(CodeUnknownField, map[string]string{"field": e.Field, "type": e.Type}),
		Params:  map[string]any{"type": e.Type, "field": e.Field},
	}
}

// RowLimitExceededError is raised during finalization when a bound table has
// more rows than the configured ceiling. Tables are never truncated.
type RowLimitExceededError struct {
	Path   string
	Limit  int
	Actual int
}

func (e *RowLimitExceededError) Error() string {
	return fmt.Sprintf("%s at %s: dataset has %d rows, more than max_rows (%d); raise max_rows or aggregate the data first",
		CodeRowLimitExceeded, displayPath(e.Path), e.Actual, e.Limit)
}

// Issue converts e into an Issue.
func (e *RowLimitExceededError) Issue() Issue {
	return Issue{
		Path:    displayPath(e.Path),
		Code:    CodeRowLimitExceeded,
		Message: i18n.T(CodeRowLimitExceeded, nil),
		Params:  map[string]any{"limit": e.Limit, "actual": e.Actual},
	}
}

// UnsupportedFormatError reports an export request for an unknown format.
type UnsupportedFormatError struct {
	Format    string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: cannot export %q; supported formats are %s",
		CodeUnsupportedFormat, e.Format, strings.Join(e.Supported, ", "))
}

// Issue converts e into an Issue.
func (e *UnsupportedFormatError) Issue() Issue {
	return Issue{
		Path:    "/",
		Code:    CodeUnsupportedFormat,
		Message: i18n.T(CodeUnsupportedFormat, map[string]string{"format": e.Format}),
		Params:  map[string]any{"format": e.Format, "supported": e.Supported},
	}
}

// TypeError reports a value of a kind that a setter does not accept, such as
// a data binding that is neither a URL, a table, a frame nor a Data entity.
type TypeError struct {
	Path     string
	Accepted []string
	Received any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s at %s: expected one of %s, got %s",
		CodeUnsupportedData, displayPath(e.Path), strings.Join(e.Accepted, ", "), describeValue(e.Received))
}

// Issue converts e into an Issue.
func (e *TypeError) Issue() Issue {
	return Issue{
		Path:    displayPath(e.Path),
		Code:    CodeUnsupportedData,
		Message: i18n.T(CodeUnsupportedData, nil),
		Hint:    "accepted: " + strings.Join(e.Accepted, ", "),
		Params:  map[string]any{"accepted": e.Accepted, "received": fmt.Sprintf("%T", e.Received)},
	}
}

// SchemaVersionMismatch is a non-fatal warning emitted when an imported
// document names a different grammar version.
type SchemaVersionMismatch struct {
	Got  string
	Want string
}

func (e *SchemaVersionMismatch) Error() string {
	return fmt.Sprintf("%s: document $schema=%s does not match the schema used by this version (%s)",
		CodeSchemaVersion, e.Got, e.Want)
}

// Issue converts e into an Issue.
func (e *SchemaVersionMismatch) Issue() Issue {
	return Issue{
		Path:    "/" + SchemaKey,
		Code:    CodeSchemaVersion,
		Message: i18n.T(CodeSchemaVersion, nil),
		Params:  map[string]any{"got": e.Got, "want": e.Want},
	}
}

// WithPathPrefix rebases the path carried by err under prefix. Errors without
// a path are returned unchanged. The result is a fresh value; err is not
// modified.
func WithPathPrefix(err error, prefix string) error {
	if err == nil || prefix == "" || prefix == "/" {
		return err
	}
	switch t := err.(type) {
	case *ValidationError:
		c := *t
		c.Path = RebasePath(prefix, t.Path)
		return &c
	case *UnknownFieldError:
		c := *t
		c.Path = RebasePath(prefix, t.Path)
		return &c
	case *RowLimitExceededError:
		c := *t
		c.Path = RebasePath(prefix, t.Path)
		return &c
	case *TypeError:
		c := *t
		c.Path = RebasePath(prefix, t.Path)
		return &c
	case Issues:
		out := make(Issues, len(t))
		for i, it := range t {
			it.Path = RebasePath(prefix, it.Path)
			out[i] = it
		}
		return out
	}
	return err
}

// AsValidationError extracts a *ValidationError using errors.As.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// describeValue renders a received value for error messages, keeping long
// values short.
func describeValue(v any) string {
	if IsUndefined(v) {
		return "Undefined"
	}
	if v == nil {
		return "null"
	}
	s := fmt.Sprintf("%#v", v)
	if _, ok := v.(string); !ok {
		s = fmt.Sprintf("%v", v)
	}
	const maxLen = 60
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return fmt.Sprintf("%s (%T)", s, v)
}
