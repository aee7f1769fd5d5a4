package normalize

// Value carries the outcome of normalizing one cell: the canonical value
// when parsing succeeded, and always the raw input for audit display.
type Value[T any] struct {
	Val T
	Raw string
	OK  bool
}

// Some wraps a successfully parsed value.
func Some[T any](raw string, val T) Value[T] {
	return Value[T]{Val: val, Raw: raw, OK: true}
}

// None marks input that did not parse. Raw is retained for display.
func None[T any](raw string) Value[T] {
	return Value[T]{Raw: raw}
}
