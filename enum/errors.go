package enum

import (
	"errors"
	"fmt"

	"github.com/steamkit/enums/internal/exc"
)

var (
	// ErrUnknownMember is returned when a name is not declared by a family.
	ErrUnknownMember = errors.New("unknown member")
	// ErrUnknownFamily is returned when a Registry has no family by a name.
	ErrUnknownFamily = errors.New("unknown family")
	// ErrNotFlags is returned when flag operations target a plain family.
	ErrNotFlags = errors.New("not a flag family")
	// ErrDuplicate is returned when a family or member name is declared twice.
	ErrDuplicate = errors.New("duplicate name")
	// ErrInvalidFlag is returned when a flag member has more than one bit set.
	ErrInvalidFlag = errors.New("flag value must have exactly one bit set")
)

func errUnknownMember(family string, name string) error {
	return exc.Wrap(exc.Location{URI: family}, exc.CodeUnknownMember, fmt.Errorf("%w %q", ErrUnknownMember, name))
}

func errUnknownFamily(family string) error {
	return exc.Wrap(exc.Location{URI: family}, exc.CodeUnknownFamily, fmt.Errorf("%w %q", ErrUnknownFamily, family))
}

func errNotFlags(family string) error {
	return exc.Wrap(exc.Location{URI: family}, exc.CodeNotFlags, fmt.Errorf("%w: %s", ErrNotFlags, family))
}

func errDuplicateMember(family string, name string) error {
	return exc.Wrap(exc.Location{URI: family}, exc.CodeDuplicateMember, fmt.Errorf("%w: member %q", ErrDuplicate, name))
}

func errDuplicateFamily(family string) error {
	return exc.Wrap(exc.Location{URI: family}, exc.CodeDuplicateFamily, fmt.Errorf("%w: family %q", ErrDuplicate, family))
}

func errInvalidFlag(family string, name string, value int64) error {
	return exc.Wrap(exc.Location{URI: family}, exc.CodeFlagNotSingleBit, fmt.Errorf("%w: %s = %#x", ErrInvalidFlag, name, uint32(value)))
}
