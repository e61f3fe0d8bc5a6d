package enum

import (
	"fmt"

	"github.com/steamkit/enums/internal/optional"
)

// Family is a closed, immutable set of members. Member names are unique;
// values may repeat, in which case the first declared member is the one
// returned when coercing that value.
//
// A Family is safe for concurrent use once constructed.
type Family[T Integer] struct {
	name    string
	members []Member[T]
	byName  map[string]int
	byValue map[T]int
}

// NewFamily builds a family from its declared members. It panics when a name
// is declared twice; families are built from static tables so that is a
// defect in the table, not a runtime condition.
func NewFamily[T Integer](name string, members ...Member[T]) *Family[T] {
	f, err := BuildFamily(name, members...)
	if err != nil {
		panic(err)
	}
	return f
}

// BuildFamily is NewFamily returning an error rather than panicking, for
// callers assembling families from dynamic input.
func BuildFamily[T Integer](name string, members ...Member[T]) (*Family[T], error) {
	f := &Family[T]{
		name:    name,
		members: make([]Member[T], len(members)),
		byName:  make(map[string]int, len(members)),
		byValue: make(map[T]int, len(members)),
	}
	copy(f.members, members)
	for offset, m := range f.members {
		if _, ok := f.byName[m.Name]; ok {
			return nil, errDuplicateMember(name, m.Name)
		}
		f.byName[m.Name] = offset
		if _, ok := f.byValue[m.Value]; !ok {
			f.byValue[m.Value] = offset
		}
	}
	return f, nil
}

func (f *Family[T]) Name() string {
	return f.name
}

// IsFlags is false for plain families. See FlagFamily.
func (f *Family[T]) IsFlags() bool {
	return false
}

// Len returns the number of declared members, aliases included.
func (f *Family[T]) Len() int {
	return len(f.members)
}

// Members returns a copy of the members in declaration order.
func (f *Family[T]) Members() []Member[T] {
	out := make([]Member[T], len(f.members))
	copy(out, f.members)
	return out
}

// Lookup returns the member declared with exactly the given name. The error
// wraps ErrUnknownMember.
func (f *Family[T]) Lookup(name string) (Member[T], error) {
	m, ok := f.byNameOpt(name).Get()
	if !ok {
		return Member[T]{}, errUnknownMember(f.name, name)
	}
	return m, nil
}

// MustLookup is Lookup that panics on an unknown name.
func (f *Family[T]) MustLookup(name string) Member[T] {
	m, err := f.Lookup(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Coerce converts a raw value into the family. It never fails: values that no
// member declares come back Unrecognized with the raw value intact.
func (f *Family[T]) Coerce(v T) Value[T] {
	m, ok := f.byValueOpt(v).Get()
	if !ok {
		return Unrecognized(v)
	}
	return Known(m)
}

// CoerceInt is Coerce for integers straight off a decoder. Values wider than
// 32 bits are truncated the same way a 32-bit wire field would be.
func (f *Family[T]) CoerceInt(v int64) Value[T] {
	return f.Coerce(T(v))
}

// CoerceValue re-coerces an already coerced value. Coercion is idempotent so
// this only changes values produced by a different family of the same type.
func (f *Family[T]) CoerceValue(v Value[T]) Value[T] {
	return f.Coerce(v.Raw())
}

// Contains reports whether any member declares v.
func (f *Family[T]) Contains(v T) bool {
	return f.byValueOpt(v).IsPresent()
}

// Describe renders v for logs as Family.Member or Family(v).
func (f *Family[T]) Describe(v T) string {
	if m, ok := f.byValueOpt(v).Get(); ok {
		return f.name + "." + m.Name
	}
	return fmt.Sprintf("%s(%d)", f.name, int32(v))
}

// Int32Members returns the members with their values widened to int32, the
// form a Registry stores.
func (f *Family[T]) Int32Members() []Member[int32] {
	out := make([]Member[int32], 0, len(f.members))
	for _, m := range f.members {
		out = append(out, Member[int32]{Name: m.Name, Value: int32(m.Value)})
	}
	return out
}

func (f *Family[T]) byNameOpt(name string) optional.Optional[Member[T]] {
	offset, ok := f.byName[name]
	if !ok {
		return optional.None[Member[T]]()
	}
	return optional.Some(f.members[offset])
}

func (f *Family[T]) byValueOpt(v T) optional.Optional[Member[T]] {
	offset, ok := f.byValue[v]
	if !ok {
		return optional.None[Member[T]]()
	}
	return optional.Some(f.members[offset])
}
