package entity

// Optional is a tri-state update field: absent (keep the current value),
// null (clear the field) or set to a new value. Partial-update operations
// take Optional fields so callers can distinguish "not provided" from
// "provided as empty".
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Keep returns an absent field; the update leaves the current value alone.
func Keep[T any]() Optional[T] {
	return Optional[T]{}
}

// Clear returns a null field; the update resets the value to its zero.
func Clear[T any]() Optional[T] {
	return Optional[T]{Present: true, Null: true}
}

// Set returns a field carrying a new value.
func Set[T any](value T) Optional[T] {
	return Optional[T]{Present: true, Value: value}
}
