package enum

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// FlagFamily is a family whose members are independent bits. Every member is
// either zero, the "none" sentinel, or has exactly one bit set.
type FlagFamily[T Integer] struct {
	*Family[T]
	// one member per set bit in ascending bit order; aliases of a bit are
	// dropped in favor of the first declared
	bits []Member[T]
	mask uint32
}

// NewFlagFamily builds a flag family. It panics on duplicate names and on
// members with more than one bit set.
func NewFlagFamily[T Integer](name string, members ...Member[T]) *FlagFamily[T] {
	f, err := BuildFlagFamily(name, members...)
	if err != nil {
		panic(err)
	}
	return f
}

// BuildFlagFamily is NewFlagFamily returning an error rather than panicking.
func BuildFlagFamily[T Integer](name string, members ...Member[T]) (*FlagFamily[T], error) {
	base, err := BuildFamily(name, members...)
	if err != nil {
		return nil, err
	}
	f := &FlagFamily[T]{Family: base}
	for _, m := range base.members {
		u := uint32(m.Value)
		if u == 0 {
			continue
		}
		if bits.OnesCount32(u) != 1 {
			return nil, errInvalidFlag(name, m.Name, int64(m.Value))
		}
		if f.mask&u != 0 {
			continue
		}
		f.mask |= u
		f.bits = append(f.bits, m)
	}
	sort.Slice(f.bits, func(i, j int) bool {
		return uint32(f.bits[i].Value) < uint32(f.bits[j].Value)
	})
	return f, nil
}

func (f *FlagFamily[T]) IsFlags() bool {
	return true
}

// Decompose returns every known flag set in v, lowest bit first. Bits that no
// member declares are ignored. The result is never nil.
func (f *FlagFamily[T]) Decompose(v T) []Member[T] {
	u := uint32(v)
	out := make([]Member[T], 0, bits.OnesCount32(u&f.mask))
	for _, m := range f.bits {
		if u&uint32(m.Value) != 0 {
			out = append(out, m)
		}
	}
	return out
}

// Compose ORs the given members together.
func (f *FlagFamily[T]) Compose(members ...Member[T]) T {
	var u uint32
	for _, m := range members {
		u |= uint32(m.Value)
	}
	return T(int32(u))
}

// Has reports whether the bit of m is set in v. The zero sentinel is only
// "set" in zero.
func (f *FlagFamily[T]) Has(v T, m Member[T]) bool {
	if m.Value == 0 {
		return v == 0
	}
	return uint32(v)&uint32(m.Value) == uint32(m.Value)
}

// Unknown returns the bits of v that no member declares.
func (f *FlagFamily[T]) Unknown(v T) T {
	return T(int32(uint32(v) &^ f.mask))
}

// Describe renders v for logs. A value matching a member directly is shown as
// Family.Member, anything else as Family(A|B|0x...) with unknown bits in hex.
func (f *FlagFamily[T]) Describe(v T) string {
	if m, ok := f.byValueOpt(v).Get(); ok {
		return f.name + "." + m.Name
	}
	set := f.Decompose(v)
	parts := make([]string, 0, len(set)+1)
	for _, m := range set {
		parts = append(parts, m.Name)
	}
	if unknown := uint32(f.Unknown(v)); unknown != 0 {
		parts = append(parts, fmt.Sprintf("%#x", unknown))
	}
	if len(parts) == 0 {
		parts = append(parts, "0")
	}
	return fmt.Sprintf("%s(%s)", f.name, strings.Join(parts, "|"))
}
