// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/steamkit/enums/internal/exc"
	"github.com/steamkit/enums/internal/idl"
)

const (
	yamlExt      = ".yaml"  // Enum definition table
	yamlShortExt = ".yml"   // Enum definition table
	protoExt     = ".proto" // Protobuf enums
)

var knownExts = map[string]idl.FileKind{
	yamlExt:      idl.FileKindYAML,
	yamlShortExt: idl.FileKindYAML,
	protoExt:     idl.FileKindProtobuf,
}

// KindOf returns the file kind implied by the extension of name.
func KindOf(name string) idl.FileKind {
	return knownExts[path.Ext(name)]
}

var _ idl.FileSystem = FileSystemMulti{}

// FileSystemMulti searches an ordered list of file systems and returns the
// first match. A file that exists but cannot be read is reported rather than
// being shadowed by a later "not found". Writes are not supported; write to a
// specific member instead.
type FileSystemMulti []idl.FileSystem

func (r FileSystemMulti) Open(ctx context.Context, uri string) ([]idl.File, error) {
	var firstErr error
	for _, member := range r {
		files, err := member.Open(ctx, uri)
		if err == nil {
			return files, nil
		}
		var e exc.Exception
		if firstErr == nil && errors.As(err, &e) && e.Code() != exc.CodeFileNotFound {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, exc.New(exc.Location{URI: uri}, exc.CodeFileNotFound, fmt.Sprintf("%s is not in any search root", uri))
}

func (r FileSystemMulti) Write(ctx context.Context, uri string, content string) error {
	return exc.New(exc.Location{URI: uri}, exc.CodeUnsuportedFileSystemOperation, "cannot write to a set of search roots")
}

// FileFilter selects which entries of a directory target are opened.
type FileFilter func(ctx context.Context, fname string) bool

type FileSystemLocalOption func(*fileSystemLocal)

// WithOptionFSFactory replaces os.DirFS as the source of the read side of the
// file system. The factory receives the absolute root. Writes always go to the
// operating system.
func WithOptionFSFactory(v func(root string) fs.FS) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fsFactory = v
	}
}

// WithOptionFileFilter replaces the directory filter. The default keeps every
// file whose extension maps to a known definition format.
func WithOptionFileFilter(v FileFilter) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fileFilter = v
	}
}

type fileSystemLocal struct {
	root       string
	fsFactory  func(string) fs.FS
	fileFilter FileFilter
}

// NewFileSystemLocal returns a FileSystem rooted at a local directory. Paths
// given to Open and Write are slash separated and resolved below root; they
// cannot escape it.
func NewFileSystemLocal(root string, options ...FileSystemLocalOption) (idl.FileSystem, error) {
	absroot, err := filepath.Abs(root)
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: root}, err)
	}
	result := &fileSystemLocal{
		root:      absroot,
		fsFactory: os.DirFS,
		fileFilter: func(ctx context.Context, fname string) bool {
			return KindOf(fname) != idl.FileKindNone
		},
	}
	for _, option := range options {
		option(result)
	}
	return result, nil
}

// relative turns a rooted target into the unrooted form io/fs requires, with
// "." standing for the root itself.
func relative(uri string) string {
	p := path.Clean("/" + uri)
	if p == "/" {
		return "."
	}
	return p[1:]
}

// Open returns the file at uri, or every matching file directly inside it
// when uri is a directory. Directory entries come back sorted by name.
func (r *fileSystemLocal) Open(ctx context.Context, uri string) ([]idl.File, error) {
	dir := r.fsFactory(r.root)
	p := relative(uri)
	stat, err := fs.Stat(dir, p)
	if err != nil {
		return nil, fsErr("/"+p, err)
	}
	if !stat.IsDir() {
		return []idl.File{r.file(dir, p)}, nil
	}
	entries, err := fs.ReadDir(dir, p)
	if err != nil {
		return nil, fsErr("/"+p, err)
	}
	files := make([]idl.File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !r.fileFilter(ctx, entry.Name()) {
			continue
		}
		files = append(files, r.file(dir, path.Join(p, entry.Name())))
	}
	if len(files) < 1 {
		return nil, exc.New(exc.Location{URI: "/" + p}, exc.CodeFileNotFound, fmt.Sprintf("directory %s holds no definition files", "/"+p))
	}
	return files, nil
}

func (r *fileSystemLocal) file(dir fs.FS, p string) idl.File {
	return NewFile("/"+p, func() (io.ReadCloser, error) {
		return dir.Open(p)
	})
}

// Write replaces the file at uri. The content goes to a temporary file that
// is renamed into place, so readers never observe a partial file. An
// unchanged file is left alone to keep its modification time.
func (r *fileSystemLocal) Write(ctx context.Context, uri string, content string) error {
	target := filepath.Join(r.root, filepath.FromSlash(relative(uri)))
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, []byte(content)) {
		return nil
	}
	d := filepath.Dir(target)
	if err := os.MkdirAll(d, 0o755); err != nil {
		return fsErr(d, err)
	}
	tmp, err := os.CreateTemp(d, "."+filepath.Base(target)+".*")
	if err != nil {
		return fsErr(d, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fsErr(tmp.Name(), err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fsErr(tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fsErr(tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fsErr(target, err)
	}
	return nil
}

func fsErr(p string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		p = pathErr.Path
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return exc.Wrap(exc.Location{URI: p}, exc.CodeFileNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return exc.Wrap(exc.Location{URI: p}, exc.CodePermissionDenied, err)
	default:
		return exc.WrapUnknown(exc.Location{URI: p}, err)
	}
}
