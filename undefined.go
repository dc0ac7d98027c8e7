package govega

// undefinedValue is the type of Undefined. It has no state, so every copy
// compares equal to every other.
type undefinedValue struct{}

func (undefinedValue) String() string { return "Undefined" }

// Undefined marks a field that has never been set. It is distinct from nil,
// which is exported as JSON null; fields holding Undefined are omitted from
// documents entirely.
var Undefined any = undefinedValue{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedValue)
	return ok
}

// OrNil maps Undefined to nil and returns every other value unchanged.
func OrNil(v any) any {
	if IsUndefined(v) {
		return nil
	}
	return v
}
