package compiler

import (
	"context"

	"github.com/steamkit/enums/internal/exc"
	"github.com/steamkit/enums/internal/idl"
)

type SubCompiler interface {
	CompileFile(ctx context.Context, r exc.Reporter, file idl.File) (*idl.Module, error)
}

func DefaultSubCompilers() map[idl.FileKind]SubCompiler {
	return map[idl.FileKind]SubCompiler{
		idl.FileKindYAML:     &SubCompilerYAML{},
		idl.FileKindProtobuf: &SubCompilerProtobuf{},
	}
}

// readContent reads file for a sub-compiler, reporting any failure.
func readContent(ctx context.Context, r exc.Reporter, file idl.File) ([]byte, error) {
	b, err := file.Content(ctx)
	if err == nil {
		return b, nil
	}
	if e, ok := err.(exc.Exception); ok {
		return nil, r.Report(e)
	}
	return nil, r.Report(exc.WrapUnknown(exc.Location{URI: file.Path(ctx)}, err))
}
