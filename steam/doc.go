// Package steam declares the enumerations exchanged with the Steam network.
//
// Every family has a named int32 type with one typed constant per member, so
// symbolic references are checked at build time:
//
//	if res == steam.EResultOK { ... }
//
// Integers decoded from the wire go through the family table, which never
// fails on unknown input:
//
//	v := steam.EResultFamily.Coerce(steam.EResult(raw))
//	if m, ok := v.Member(); ok { ... }
//
// Registry gives name-keyed access for callers that only hold family names as
// strings.
package steam

//go:generate go run .. --root .. --output enums.gen.go defs/steam.yaml
