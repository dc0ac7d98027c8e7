// Package expr builds Vega expression strings and deferred, expression-bound
// frames over a table.
package expr

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	govega "github.com/reoring/govega"
)

// Expr is an immutable expression. It implements govega.Expression.
type Expr struct {
	text string
}

// Expr returns the canonical text of the expression.
func (e Expr) Expr() string { return e.text }

func (e Expr) String() string { return e.text }

var _ govega.Expression = Expr{}

// Raw wraps already formed expression text.
func Raw(text string) Expr { return Expr{text: text} }

// Datum references a field of the current data object.
func Datum(field string) Expr {
	if isIdent(field) {
		return Expr{text: "datum." + field}
	}
	return Expr{text: "datum[" + quote(field) + "]"}
}

// Lit renders a Go value as an expression literal. Expressions are kept
// as they are.
func Lit(v any) Expr {
	if e, ok := v.(govega.Expression); ok {
		return Expr{text: e.Expr()}
	}
	nv, err := govega.NormalizeValue(v)
	if err != nil {
		return Expr{text: "null"}
	}
	b, err := json.MarshalWithOption(nv, json.DisableHTMLEscape())
	if err != nil {
		return Expr{text: "null"}
	}
	return Expr{text: string(b)}
}

func binary(l any, op string, r any) Expr {
	return Expr{text: "(" + Lit(l).text + " " + op + " " + Lit(r).text + ")"}
}

func (e Expr) Add(o any) Expr { return binary(e, "+", o) }
func (e Expr) Sub(o any) Expr { return binary(e, "-", o) }
func (e Expr) Mul(o any) Expr { return binary(e, "*", o) }
func (e Expr) Div(o any) Expr { return binary(e, "/", o) }
func (e Expr) Mod(o any) Expr { return binary(e, "%", o) }

func (e Expr) Eq(o any) Expr { return binary(e, "==", o) }
func (e Expr) Ne(o any) Expr { return binary(e, "!=", o) }
func (e Expr) Lt(o any) Expr { return binary(e, "<", o) }
func (e Expr) Le(o any) Expr { return binary(e, "<=", o) }
func (e Expr) Gt(o any) Expr { return binary(e, ">", o) }
func (e Expr) Ge(o any) Expr { return binary(e, ">=", o) }

func (e Expr) And(o any) Expr { return binary(e, "&&", o) }
func (e Expr) Or(o any) Expr  { return binary(e, "||", o) }

// Not negates a boolean expression.
func Not(v any) Expr { return Expr{text: "!(" + Lit(v).text + ")"} }

// Neg negates a numeric expression.
func Neg(v any) Expr { return Expr{text: "-(" + Lit(v).text + ")"} }

// Call invokes a function of the expression language, e.g. Call("log", x).
func Call(fn string, args ...any) Expr {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Lit(a).text
	}
	return Expr{text: fmt.Sprintf("%s(%s)", fn, strings.Join(parts, ","))}
}

// If is the conditional operator.
func If(cond, then, otherwise any) Expr {
	return Expr{text: "(" + Lit(cond).text + " ? " + Lit(then).text + " : " + Lit(otherwise).text + ")"}
}

func quote(s string) string {
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		return `""`
	}
	return string(b)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
