package vegalite

import (
	"strings"
	"time"

	govega "github.com/reoring/govega"
)

// Shorthand is the parsed form of a channel field written as
// "aggregate(field):type", e.g. "mean(price):Q" or "count()".
type Shorthand struct {
	Field     string
	Aggregate string
	Type      string
}

var typeCodes = map[string]string{
	"Q": Quantitative, "O": Ordinal, "T": Temporal, "N": Nominal,
	Quantitative: Quantitative, Ordinal: Ordinal, Temporal: Temporal, Nominal: Nominal,
}

// ParseShorthand splits a shorthand string. Parts that do not parse are
// left in Field, so a plain field name comes back unchanged.
func ParseShorthand(s string) Shorthand {
	var sh Shorthand
	if i := strings.LastIndex(s, ":"); i >= 0 {
		if t, ok := typeCodes[s[i+1:]]; ok {
			sh.Type = t
			s = s[:i]
		}
	}
	if open := strings.Index(s, "("); open > 0 && strings.HasSuffix(s, ")") {
		op := s[:open]
		if isAggregateOp(op) {
			sh.Aggregate = op
			s = s[open+1 : len(s)-1]
		}
	}
	sh.Field = s
	if sh.Aggregate == "count" && sh.Type == "" {
		sh.Type = Quantitative
	}
	return sh
}

func isAggregateOp(op string) bool {
	for _, a := range AggregateOps {
		if a == op {
			return true
		}
	}
	return false
}

// InferType guesses the encoding type of a table column from its values:
// all numbers -> quantitative, all times -> temporal, anything else nominal.
// Missing cells and nulls are ignored.
func InferType(t govega.Table, column string) (string, bool) {
	found := false
	for _, c := range t.Columns() {
		if c == column {
			found = true
			break
		}
	}
	if !found {
		return "", false
	}
	numeric, temporal, seen := true, true, false
	for _, rec := range t.Records() {
		v, ok := rec[column]
		if !ok || v == nil {
			continue
		}
		seen = true
		switch v.(type) {
		case time.Time:
			numeric = false
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			temporal = false
		default:
			numeric, temporal = false, false
		}
	}
	switch {
	case !seen:
		return Nominal, true
	case numeric:
		return Quantitative, true
	case temporal:
		return Temporal, true
	}
	return Nominal, true
}
