package idl

import (
	"context"
	"fmt"

	"github.com/steamkit/enums/internal/optional"
)

type Closer interface {
	Close(ctx context.Context) error
}

type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Closer
}

type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

type FileKind uint32

const (
	FileKindNone FileKind = iota
	FileKindYAML
	FileKindProtobuf
)

func (k FileKind) String() string {
	switch k {
	case FileKindNone:
		return "none"
	case FileKindYAML:
		return "yaml"
	case FileKindProtobuf:
		return "protobuf"
	default:
		return fmt.Sprintf("unkown-%d", k)
	}
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	// Content reads the whole file. Each call opens the file again.
	Content(ctx context.Context) ([]byte, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}

type Compiler interface {
	Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error)
}

type CompileRequest struct {
	Files []string
	// Families are glob patterns selecting which families to keep. Empty
	// keeps every family.
	Families []string
	// FlagFamilies names families to treat as flags when the source format
	// cannot say so itself.
	FlagFamilies []string
}

type CompileResponse struct {
	Image *Image
}

// Image is the merged, checked set of families from every compiled file.
type Image struct {
	Package  string
	Families []*Family
}

// Lookup returns the family with the given name.
func (i *Image) Lookup(name string) optional.Optional[*Family] {
	for _, f := range i.Families {
		if f.Name == name {
			return optional.Some(f)
		}
	}
	return optional.None[*Family]()
}

// Module is the content of a single definition file.
type Module struct {
	URI      string
	Package  string
	Families []*Family
}

type Generator interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
}

type GenerateRequest struct {
	// Package overrides the package name from the Image.
	Package string
	// EnumImport is the import path of the registry package the generated
	// code builds families with.
	EnumImport string
	// FileName is the name of the generated file.
	FileName string
	Image    *Image
	// Sources are recorded in the generated header.
	Sources []string
}

type GenerateResponse struct {
	Files []*GeneratedFile
}

type GeneratedFile struct {
	Name    string
	Content string
}

type Location struct {
	Line   int32
	Column int32
	Offset int64
}

type FamilyKind uint8

const (
	FamilyKindEnum  FamilyKind = 0
	FamilyKindFlags FamilyKind = 1
)

func (k FamilyKind) String() string {
	switch k {
	case FamilyKindEnum:
		return "enum"
	case FamilyKindFlags:
		return "flags"
	default:
		return fmt.Sprintf("unkown-%d", k)
	}
}

// Family is one enumeration as declared in a definition file. Member values
// are kept wide so that out of range declarations can be reported rather
// than silently truncated.
type Family struct {
	Name     string
	Kind     FamilyKind
	Doc      string
	Members  []*Member
	URI      string
	Location Location
}

type Member struct {
	Name     string
	Value    int64
	Doc      string
	Location Location
}
