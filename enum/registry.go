package enum

// Descriptor is the untyped view of a family that a Registry can hold. Both
// *Family and *FlagFamily implement it.
type Descriptor interface {
	Name() string
	IsFlags() bool
	Int32Members() []Member[int32]
}

var (
	_ Descriptor = (*Family[int32])(nil)
	_ Descriptor = (*FlagFamily[int32])(nil)
)

// Registry indexes families by name for callers that only have names as
// dynamic strings, such as configuration or admin input. Typed code should use
// the families directly.
//
// A Registry is immutable after NewRegistry returns and is safe for
// concurrent use.
type Registry struct {
	order    []string
	families map[string]*Family[int32]
	flags    map[string]*FlagFamily[int32]
}

// NewRegistry builds a registry from the given families. Family names must be
// unique.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		order:    make([]string, 0, len(descriptors)),
		families: make(map[string]*Family[int32], len(descriptors)),
		flags:    make(map[string]*FlagFamily[int32]),
	}
	for _, d := range descriptors {
		name := d.Name()
		if _, ok := r.families[name]; ok {
			return nil, errDuplicateFamily(name)
		}
		members := d.Int32Members()
		if d.IsFlags() {
			ff, err := BuildFlagFamily(name, members...)
			if err != nil {
				return nil, err
			}
			r.flags[name] = ff
			r.families[name] = ff.Family
		} else {
			f, err := BuildFamily(name, members...)
			if err != nil {
				return nil, err
			}
			r.families[name] = f
		}
		r.order = append(r.order, name)
	}
	return r, nil
}

// MustRegistry is NewRegistry that panics on error.
func MustRegistry(descriptors ...Descriptor) *Registry {
	r, err := NewRegistry(descriptors...)
	if err != nil {
		panic(err)
	}
	return r
}

// Families returns the family names in registration order.
func (r *Registry) Families() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Family returns the untyped family registered under name.
func (r *Registry) Family(name string) (*Family[int32], error) {
	f, ok := r.families[name]
	if !ok {
		return nil, errUnknownFamily(name)
	}
	return f, nil
}

// FlagFamily returns the untyped flag family registered under name. The error
// wraps ErrNotFlags when the family exists but is not a flag family.
func (r *Registry) FlagFamily(name string) (*FlagFamily[int32], error) {
	if _, ok := r.families[name]; !ok {
		return nil, errUnknownFamily(name)
	}
	ff, ok := r.flags[name]
	if !ok {
		return nil, errNotFlags(name)
	}
	return ff, nil
}

// LookupByName returns the member of family declared as name.
func (r *Registry) LookupByName(family string, name string) (Member[int32], error) {
	f, err := r.Family(family)
	if err != nil {
		return Member[int32]{}, err
	}
	return f.Lookup(name)
}

// LookupByValue coerces v into family. Only an unknown family is an error; an
// unknown value comes back Unrecognized.
func (r *Registry) LookupByValue(family string, v int32) (Value[int32], error) {
	f, err := r.Family(family)
	if err != nil {
		return Value[int32]{}, err
	}
	return f.Coerce(v), nil
}

// DecomposeFlags returns the known flags set in v, lowest bit first.
func (r *Registry) DecomposeFlags(family string, v int32) ([]Member[int32], error) {
	ff, err := r.FlagFamily(family)
	if err != nil {
		return nil, err
	}
	return ff.Decompose(v), nil
}

// Describe renders v as the named family would for logs.
func (r *Registry) Describe(family string, v int32) (string, error) {
	if ff, ok := r.flags[family]; ok {
		return ff.Describe(v), nil
	}
	f, err := r.Family(family)
	if err != nil {
		return "", err
	}
	return f.Describe(v), nil
}
