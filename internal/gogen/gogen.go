package gogen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"path"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/steamkit/enums/internal/exc"
	"github.com/steamkit/enums/internal/idl"
)

const (
	DefaultEnumImport = "github.com/steamkit/enums/enum"
	DefaultFileName   = "enums.gen.go"
)

type Option func(g *generator)

func OptionWithLogger(logger *zap.Logger) Option {
	return func(g *generator) {
		g.Logger = logger
	}
}

// New returns a Generator that renders an Image as a single Go source file
// declaring one named int32 type per family, a typed constant per member, a
// String method per type and the enum.Family tables.
func New(opts ...Option) idl.Generator {
	g := &generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.Logger == nil {
		g.Logger = zap.NewNop()
	}
	return g
}

type generator struct {
	Logger *zap.Logger
}

func (self *generator) Generate(ctx context.Context, req *idl.GenerateRequest) (*idl.GenerateResponse, error) {
	pkg := req.Package
	if pkg == "" && req.Image != nil {
		pkg = req.Image.Package
	}
	if pkg == "" {
		return nil, exc.New(exc.Location{}, exc.CodeGenerateFailed, "no package name given and none declared by the definitions")
	}
	importPath := req.EnumImport
	if importPath == "" {
		importPath = DefaultEnumImport
	}
	name := req.FileName
	if name == "" {
		name = DefaultFileName
	}
	data := fileData{
		Package:    pkg,
		EnumImport: importPath,
		EnumName:   path.Base(importPath),
		Sources:    strings.Join(req.Sources, ", "),
	}
	if req.Image != nil {
		for _, f := range req.Image.Families {
			data.Families = append(data.Families, newFamilyData(f))
		}
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, exc.Wrap(exc.Location{URI: name}, exc.CodeGenerateFailed, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, exc.Wrap(exc.Location{URI: name}, exc.CodeGenerateFailed, fmt.Errorf("formatting generated source: %w", err))
	}
	self.Logger.Debug("generated enum source",
		zap.String("file", name),
		zap.String("package", pkg),
		zap.Int("families", len(data.Families)),
		zap.Int("bytes", len(src)))
	return &idl.GenerateResponse{
		Files: []*idl.GeneratedFile{
			{Name: name, Content: string(src)},
		},
	}, nil
}

type fileData struct {
	Package    string
	EnumImport string
	EnumName   string
	Sources    string
	Families   []familyData
}

type familyData struct {
	Name    string
	Doc     []string
	Flags   bool
	Members []memberData
	// Cases holds one member per distinct value for the String switch.
	Cases []memberData
}

type memberData struct {
	Name  string
	Ident string
	Value string
	Doc   []string
}

func newFamilyData(f *idl.Family) familyData {
	fd := familyData{
		Name:  f.Name,
		Flags: f.Kind == idl.FamilyKindFlags,
		Doc:   docLines(f.Doc),
	}
	if len(fd.Doc) == 0 {
		if fd.Flags {
			fd.Doc = []string{fmt.Sprintf("%s is a set of independent flags.", f.Name)}
		} else {
			fd.Doc = []string{fmt.Sprintf("%s enumerates %d known values.", f.Name, len(f.Members))}
		}
	}
	seen := make(map[int64]bool, len(f.Members))
	for _, m := range f.Members {
		md := memberData{
			Name:  m.Name,
			Ident: f.Name + m.Name,
			Value: formatValue(m.Value, fd.Flags),
			Doc:   docLines(m.Doc),
		}
		fd.Members = append(fd.Members, md)
		if !seen[m.Value] {
			seen[m.Value] = true
			fd.Cases = append(fd.Cases, md)
		}
	}
	return fd
}

func formatValue(v int64, flags bool) string {
	if flags && v >= 0x10 {
		return fmt.Sprintf("%#x", v)
	}
	return fmt.Sprintf("%d", v)
}

func docLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}

var fileTemplate = template.Must(template.New("enums").Parse(`// Code generated by enumgen{{if .Sources}} from {{.Sources}}{{end}}. DO NOT EDIT.

package {{.Package}}

import (
{{- if .Families}}
	"strconv"
{{end}}
	"{{.EnumImport}}"
)
{{range $f := .Families}}
{{range .Doc}}// {{.}}
{{end}}type {{.Name}} int32

const (
{{- range .Members}}
{{- range .Doc}}
	// {{.}}
{{- end}}
	{{.Ident}} {{$f.Name}} = {{.Value}}
{{- end}}
)

{{if .Flags -}}
var {{.Name}}Family = {{$.EnumName}}.NewFlagFamily[{{.Name}}]("{{.Name}}",
{{- else -}}
var {{.Name}}Family = {{$.EnumName}}.NewFamily[{{.Name}}]("{{.Name}}",
{{- end}}
{{- range .Members}}
	{{$.EnumName}}.Member[{{$f.Name}}]{Name: "{{.Name}}", Value: {{.Ident}}},
{{- end}}
)

func (v {{.Name}}) String() string {
	switch v {
{{- range .Cases}}
	case {{.Ident}}:
		return "{{.Name}}"
{{- end}}
	}
	return "{{.Name}}(" + strconv.FormatInt(int64(v), 10) + ")"
}
{{end}}
// Families returns every family in declaration order.
func Families() []{{.EnumName}}.Descriptor {
	return []{{.EnumName}}.Descriptor{
{{- range .Families}}
		{{.Name}}Family,
{{- end}}
	}
}
`))
