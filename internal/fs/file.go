// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/steamkit/enums/internal/exc"
	"github.com/steamkit/enums/internal/idl"
)

// MaxDefinitionSize bounds how many bytes of a definition file are read.
const MaxDefinitionSize = 4 << 20

// NewFileString wraps static content in idl.File. The kind comes from the
// extension of path.
func NewFileString(path string, content string) idl.File {
	return NewFile(path, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	})
}

// NewFile wraps a file that is opened on demand. The open function is called
// once per Content call and must return a fresh handle each time.
func NewFile(path string, open func() (io.ReadCloser, error)) idl.File {
	return &file{
		path: path,
		kind: KindOf(path),
		open: open,
	}
}

type file struct {
	path string
	kind idl.FileKind
	open func() (io.ReadCloser, error)
}

func (f *file) Path(ctx context.Context) string {
	return f.path
}

func (f *file) Kind(ctx context.Context) idl.FileKind {
	return f.kind
}

func (f *file) Content(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: f.path}, err)
	}
	rc, err := f.open()
	if err != nil {
		return nil, fsErr(f.path, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(io.LimitReader(rc, MaxDefinitionSize+1))
	if err != nil {
		return nil, fsErr(f.path, err)
	}
	if len(b) > MaxDefinitionSize {
		return nil, exc.New(exc.Location{URI: f.path}, exc.CodeFileTooLarge, fmt.Sprintf("definition file is larger than %d bytes", MaxDefinitionSize))
	}
	return b, nil
}
