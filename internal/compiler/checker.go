package compiler

import (
	"fmt"
	"go/token"
	"math"
	"math/bits"

	"github.com/steamkit/enums/internal/exc"
	"github.com/steamkit/enums/internal/idl"
)

// check() validates a merged Image of families before code generation.
// reports: duplicate families, duplicate members, invalid identifiers,
// out of range values, flag members with more than one bit, generated
// identifier collisions and empty families
func check(image *idl.Image, reporter exc.Reporter) {
	checker := imageChecker{
		image:       image,
		reporter:    reporter,
		families:    make(map[string]*idl.Family, len(image.Families)),
		identifiers: map[string]string{"Families": "the Families function"},
	}
	checker.check()
}

type imageChecker struct {
	image       *idl.Image
	reporter    exc.Reporter
	families    map[string]*idl.Family
	identifiers map[string]string
}

func (c *imageChecker) check() {
	for _, family := range c.image.Families {
		if previous, ok := c.families[family.Name]; ok {
			c.report(family.URI, family.Location, exc.CodeDuplicateFamily,
				fmt.Sprintf("family %s is already declared at %s", family.Name, exc.Location{URI: previous.URI, Location: previous.Location}))
			continue
		}
		c.families[family.Name] = family
		c.checkFamily(family)
	}
}

func (c *imageChecker) checkFamily(family *idl.Family) {
	if !token.IsIdentifier(family.Name) || !token.IsExported(family.Name) {
		c.report(family.URI, family.Location, exc.CodeInvalidName,
			fmt.Sprintf("family name %q is not an exported Go identifier", family.Name))
		return
	}
	c.claim(family, family.Name, family.Location)
	c.claim(family, family.Name+"Family", family.Location)
	if len(family.Members) == 0 {
		c.report(family.URI, family.Location, exc.CodeEmptyFamily,
			fmt.Sprintf("family %s declares no members", family.Name))
		return
	}
	names := make(map[string]bool, len(family.Members))
	for _, member := range family.Members {
		if !token.IsIdentifier(family.Name + member.Name) {
			c.report(family.URI, member.Location, exc.CodeInvalidName,
				fmt.Sprintf("member name %s.%q does not form a Go identifier", family.Name, member.Name))
			continue
		}
		if names[member.Name] {
			c.report(family.URI, member.Location, exc.CodeDuplicateMember,
				fmt.Sprintf("member %s.%s is declared more than once", family.Name, member.Name))
			continue
		}
		names[member.Name] = true
		c.claim(family, family.Name+member.Name, member.Location)
		if member.Value < math.MinInt32 || member.Value > math.MaxInt32 {
			c.report(family.URI, member.Location, exc.CodeValueOutOfRange,
				fmt.Sprintf("member %s.%s value %d does not fit in 32 bits", family.Name, member.Name, member.Value))
			continue
		}
		if family.Kind == idl.FamilyKindFlags && member.Value != 0 && bits.OnesCount32(uint32(int32(member.Value))) != 1 {
			c.report(family.URI, member.Location, exc.CodeFlagNotSingleBit,
				fmt.Sprintf("flag %s.%s value %#x must have exactly one bit set", family.Name, member.Name, uint32(int32(member.Value))))
		}
	}
}

// claim records a generated Go identifier and reports when another family
// already produces the same one.
func (c *imageChecker) claim(family *idl.Family, ident string, location idl.Location) {
	if owner, ok := c.identifiers[ident]; ok {
		c.report(family.URI, location, exc.CodeInvalidName,
			fmt.Sprintf("generated identifier %s of %s collides with one from %s", ident, family.Name, owner))
		return
	}
	c.identifiers[ident] = family.Name
}

func (c *imageChecker) report(uri string, location idl.Location, code string, message string) {
	_ = c.reporter.Report(exc.New(exc.Location{URI: uri, Location: location}, code, message))
}
