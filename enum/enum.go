// Package enum provides typed families of named 32-bit integer constants and
// tolerant coercion of raw wire values into them.
//
// Names are strict: looking up a name that a family does not declare is an
// error, because names only come from local code. Values are tolerant:
// coercing an integer that no member declares yields an Unrecognized Value
// carrying the raw integer, because values come from peers that may be newer
// than this build.
package enum

import (
	"strconv"
)

// Integer is the underlying representation of every family.
type Integer interface {
	~int32
}

// Member is a single named constant of a family.
type Member[T Integer] struct {
	Name  string
	Value T
}

func (m Member[T]) String() string {
	return m.Name
}

// Value is the result of coercing a raw integer into a family. It is either
// Known, holding the matching member, or Unrecognized, holding only the raw
// integer. The zero Value is Unrecognized(0).
type Value[T Integer] struct {
	member Member[T]
	known  bool
}

// Known wraps a member of a family.
func Known[T Integer](m Member[T]) Value[T] {
	return Value[T]{member: m, known: true}
}

// Unrecognized wraps a raw integer that no member of the family declares.
func Unrecognized[T Integer](raw T) Value[T] {
	return Value[T]{member: Member[T]{Value: raw}}
}

// IsKnown reports whether the value matched a declared member.
func (v Value[T]) IsKnown() bool {
	return v.known
}

// Member returns the matched member. The second result is false for an
// Unrecognized value.
func (v Value[T]) Member() (Member[T], bool) {
	if !v.known {
		return Member[T]{}, false
	}
	return v.member, true
}

// Raw returns the integer the value was coerced from. For Known values this is
// the member's value.
func (v Value[T]) Raw() T {
	return v.member.Value
}

// String returns the member name, or the decimal raw value when unrecognized.
func (v Value[T]) String() string {
	if v.known {
		return v.member.Name
	}
	return strconv.FormatInt(int64(v.member.Value), 10)
}
