package gogen

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/steamkit/enums/internal/exc"
	"github.com/steamkit/enums/internal/idl"
)

func testImage() *idl.Image {
	return &idl.Image{
		Package: "steam",
		Families: []*idl.Family{
			{
				Name: "EResult",
				Doc:  "EResult is the outcome of a request.",
				Members: []*idl.Member{
					{Name: "Invalid", Value: 0},
					{Name: "OK", Value: 1, Doc: "Success."},
					{Name: "Fail", Value: 2},
				},
			},
			{
				Name: "ETypeChar",
				Members: []*idl.Member{
					{Name: "T", Value: 8},
					{Name: "L", Value: 8},
				},
			},
			{
				Name: "EPersonaStateFlag",
				Kind: idl.FamilyKindFlags,
				Members: []*idl.Member{
					{Name: "NONE", Value: 0},
					{Name: "HasRichPresence", Value: 1},
					{Name: "ClientTypeWeb", Value: 256},
				},
			},
		},
	}
}

type parsedFile struct {
	file   *ast.File
	consts map[string]string
	types  []string
	funcs  []string
	vars   []string
}

func parse(t *testing.T, src string) parsedFile {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "enums.gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	out := parsedFile{file: file, consts: map[string]string{}}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					out.types = append(out.types, s.Name.Name)
				case *ast.ValueSpec:
					for x, name := range s.Names {
						if d.Tok == token.CONST {
							out.consts[name.Name] = s.Values[x].(*ast.BasicLit).Value
						} else {
							out.vars = append(out.vars, name.Name)
						}
					}
				}
			}
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				name = d.Recv.List[0].Type.(*ast.Ident).Name + "." + name
			}
			out.funcs = append(out.funcs, name)
		}
	}
	return out
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	g := New()
	out, err := g.Generate(context.Background(), &idl.GenerateRequest{
		Image:   testImage(),
		Sources: []string{"defs/steam.yaml"},
	})
	require.NoError(t, err)
	require.Len(t, out.Files, 1)
	require.Equal(t, DefaultFileName, out.Files[0].Name)
	src := out.Files[0].Content
	require.True(t, strings.HasPrefix(src, "// Code generated by enumgen from defs/steam.yaml. DO NOT EDIT.\n"))

	parsed := parse(t, src)
	require.Equal(t, "steam", parsed.file.Name.Name)
	require.Equal(t, []string{"EResult", "ETypeChar", "EPersonaStateFlag"}, parsed.types)
	require.Equal(t, []string{"EResultFamily", "ETypeCharFamily", "EPersonaStateFlagFamily"}, parsed.vars)
	require.Equal(t, []string{"EResult.String", "ETypeChar.String", "EPersonaStateFlag.String", "Families"}, parsed.funcs)
	require.Equal(t, map[string]string{
		"EResultInvalid":                   "0",
		"EResultOK":                        "1",
		"EResultFail":                      "2",
		"ETypeCharT":                       "8",
		"ETypeCharL":                       "8",
		"EPersonaStateFlagNONE":            "0",
		"EPersonaStateFlagHasRichPresence": "1",
		"EPersonaStateFlagClientTypeWeb":   "0x100",
	}, parsed.consts)

	imports := make([]string, 0, len(parsed.file.Imports))
	for _, imp := range parsed.file.Imports {
		imports = append(imports, imp.Path.Value)
	}
	require.Equal(t, []string{`"strconv"`, `"github.com/steamkit/enums/enum"`}, imports)

	require.Contains(t, src, "// EResult is the outcome of a request.\ntype EResult int32\n")
	require.Contains(t, src, "// Success.\n")
	require.Contains(t, src, `enum.NewFlagFamily[EPersonaStateFlag]("EPersonaStateFlag",`)
	require.Contains(t, src, `enum.NewFamily[ETypeChar]("ETypeChar",`)
	require.Contains(t, src, "// EPersonaStateFlag is a set of independent flags.\n")
	// aliases share one case so the switch has no duplicates
	require.Equal(t, 1, strings.Count(src, "case ETypeCharT:"))
	require.NotContains(t, src, "case ETypeCharL:")
	require.Contains(t, src, `return "ETypeChar(" + strconv.FormatInt(int64(v), 10) + ")"`)
}

func TestGenerateOverrides(t *testing.T) {
	t.Parallel()
	g := New()
	out, err := g.Generate(context.Background(), &idl.GenerateRequest{
		Package:    "enums",
		EnumImport: "example.com/registry/enum",
		FileName:   "steam_enums.go",
		Image:      testImage(),
	})
	require.NoError(t, err)
	require.Equal(t, "steam_enums.go", out.Files[0].Name)
	src := out.Files[0].Content
	require.True(t, strings.HasPrefix(src, "// Code generated by enumgen. DO NOT EDIT.\n"))
	parsed := parse(t, src)
	require.Equal(t, "enums", parsed.file.Name.Name)
	require.Equal(t, `"example.com/registry/enum"`, parsed.file.Imports[1].Path.Value)
}

func TestGenerateEmpty(t *testing.T) {
	t.Parallel()
	g := New()
	out, err := g.Generate(context.Background(), &idl.GenerateRequest{Image: &idl.Image{Package: "steam"}})
	require.NoError(t, err)
	parsed := parse(t, out.Files[0].Content)
	require.Len(t, parsed.file.Imports, 1)
	require.Equal(t, []string{"Families"}, parsed.funcs)
}

func TestGenerateNoPackage(t *testing.T) {
	t.Parallel()
	g := New()
	_, err := g.Generate(context.Background(), &idl.GenerateRequest{Image: &idl.Image{}})
	var e exc.Exception
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeGenerateFailed, e.Code())
}
