package optional

// Optional holds either a value or nothing. The zero value is empty.
type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

func (self Optional[T]) Value() T {
	return self.value
}

// Get returns the value and whether it was present.
func (self Optional[T]) Get() (T, bool) {
	return self.value, self.present
}

// ValueOr returns the value if present and fallback otherwise.
func (self Optional[T]) ValueOr(fallback T) T {
	if !self.present {
		return fallback
	}
	return self.value
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromMap looks up k in m and wraps the result.
func FromMap[K comparable, V any](m map[K]V, k K) Optional[V] {
	v, ok := m[k]
	if !ok {
		return None[V]()
	}
	return Some(v)
}
