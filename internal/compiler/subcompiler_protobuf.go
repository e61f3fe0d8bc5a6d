package compiler

import (
	"bytes"
	"context"
	"strings"

	"github.com/bufbuild/protocompile/ast"
	"github.com/bufbuild/protocompile/options"
	"github.com/bufbuild/protocompile/parser"
	"github.com/bufbuild/protocompile/reporter"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/steamkit/enums/internal/exc"
	"github.com/steamkit/enums/internal/idl"
)

// SubCompilerProtobuf reads enums out of .proto files. Protobuf scopes enum
// values at the package level so value names conventionally carry the enum
// name as a prefix (EResult_OK); the prefix is stripped. Nested enums are
// promoted with their parent names joined by '_'. Protobuf cannot mark an
// enum as a set of flags, so enums named *Flag or *Flags are treated as flag
// families and CompileRequest.FlagFamilies can name others.
type SubCompilerProtobuf struct{}

func (self *SubCompilerProtobuf) CompileFile(ctx context.Context, r exc.Reporter, file idl.File) (*idl.Module, error) {
	uri := file.Path(ctx)
	raw, err := readContent(ctx, r, file)
	if err != nil {
		return nil, err
	}
	h := reporter.NewHandler(&protoReporter{Reporter: r})
	node, err := parser.Parse(uri, bytes.NewReader(raw), h)
	if err != nil {
		return nil, err
	}
	result, err := parser.ResultFromAST(node, true, h)
	if err != nil {
		return nil, err
	}
	_, err = options.InterpretUnlinkedOptions(result)
	if err != nil {
		return nil, err
	}

	fd := result.FileDescriptorProto()
	module := &idl.Module{
		URI:     uri,
		Package: goPackageName(fd.GetPackage()),
	}
	walker := &protoEnumWalker{uri: uri, file: node, result: result}
	for _, enumDescriptor := range fd.GetEnumType() {
		module.Families = append(module.Families, walker.family("", enumDescriptor))
	}
	for _, descriptor := range fd.GetMessageType() {
		walker.promoteNested(&module.Families, descriptor.GetName()+"_", descriptor)
	}
	return module, nil
}

type protoEnumWalker struct {
	uri    string
	file   *ast.FileNode
	result parser.Result
}

func (w *protoEnumWalker) promoteNested(families *[]*idl.Family, prefix string, descriptor *descriptorpb.DescriptorProto) {
	for _, enumDescriptor := range descriptor.GetEnumType() {
		*families = append(*families, w.family(prefix, enumDescriptor))
	}
	for _, nested := range descriptor.GetNestedType() {
		w.promoteNested(families, prefix+nested.GetName()+"_", nested)
	}
}

func (w *protoEnumWalker) family(prefix string, enumDescriptor *descriptorpb.EnumDescriptorProto) *idl.Family {
	name := prefix + enumDescriptor.GetName()
	family := &idl.Family{
		Name:     name,
		Kind:     idl.FamilyKindEnum,
		URI:      w.uri,
		Location: w.location(w.result.EnumNode(enumDescriptor)),
	}
	if strings.HasSuffix(name, "Flag") || strings.HasSuffix(name, "Flags") {
		family.Kind = idl.FamilyKindFlags
	}
	valuePrefix := enumDescriptor.GetName() + "_"
	for _, value := range enumDescriptor.GetValue() {
		memberName := value.GetName()
		if trimmed := strings.TrimPrefix(memberName, valuePrefix); trimmed != "" {
			memberName = trimmed
		}
		family.Members = append(family.Members, &idl.Member{
			Name:     memberName,
			Value:    int64(value.GetNumber()),
			Location: w.location(w.result.EnumValueNode(value)),
		})
	}
	return family
}

func (w *protoEnumWalker) location(n ast.Node) idl.Location {
	if n == nil {
		return idl.Location{}
	}
	pos := w.file.NodeInfo(n).Start()
	return idl.Location{
		Line:   int32(pos.Line),
		Column: int32(pos.Col),
		Offset: int64(pos.Offset),
	}
}

// goPackageName converts a protobuf package into the last path element
// usable as a Go package name.
func goPackageName(pkg string) string {
	if pkg == "" {
		return ""
	}
	parts := strings.Split(pkg, ".")
	return strings.ToLower(strings.ReplaceAll(parts[len(parts)-1], "-", "_"))
}

type protoReporter struct {
	Reporter exc.Reporter
}

func (self *protoReporter) Error(e reporter.ErrorWithPos) error {
	return self.Reporter.Report(exc.Wrap(protoLocation(e), exc.CodeProtobufParseError, e))
}

func (self *protoReporter) Warning(e reporter.ErrorWithPos) {
	_ = self.Reporter.Report(exc.Wrap(protoLocation(e), exc.CodeProtobufWarning, e))
}

func protoLocation(e reporter.ErrorWithPos) exc.Location {
	pos := e.GetPosition()
	return exc.Location{
		URI: pos.Filename,
		Location: idl.Location{
			Line:   int32(pos.Line),
			Column: int32(pos.Col),
			Offset: int64(pos.Offset),
		},
	}
}
