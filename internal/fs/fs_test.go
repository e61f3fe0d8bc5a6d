package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/steamkit/enums/internal/exc"
	"github.com/steamkit/enums/internal/idl"
)

func memoryFS(t *testing.T, files map[string]string) idl.FileSystem {
	t.Helper()
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	f, err := NewFileSystemLocal("/", WithOptionFSFactory(func(string) iofs.FS { return m }))
	require.NoError(t, err)
	return f
}

func readAll(t *testing.T, ctx context.Context, f idl.File) string {
	t.Helper()
	b, err := f.Content(ctx)
	require.NoError(t, err)
	return string(b)
}

func TestOpenFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := memoryFS(t, map[string]string{
		"defs/steam.yaml": "package: steam\n",
	})
	files, err := f.Open(ctx, "/defs/steam.yaml")
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "/defs/steam.yaml", files[0].Path(ctx))
	require.Equal(t, idl.FileKindYAML, files[0].Kind(ctx))
	require.Equal(t, "package: steam\n", readAll(t, ctx, files[0]))
}

func TestOpenDirectoryFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := memoryFS(t, map[string]string{
		"defs/a.yaml":     "a",
		"defs/b.yml":      "b",
		"defs/c.proto":    "c",
		"defs/README.md":  "ignored",
		"defs/sub/d.yaml": "nested directories are not walked",
	})
	files, err := f.Open(ctx, "defs")
	require.NoError(t, err)
	paths := make([]string, 0, len(files))
	kinds := make([]idl.FileKind, 0, len(files))
	for _, file := range files {
		paths = append(paths, file.Path(ctx))
		kinds = append(kinds, file.Kind(ctx))
	}
	require.Equal(t, []string{"/defs/a.yaml", "/defs/b.yml", "/defs/c.proto"}, paths)
	require.Equal(t, []idl.FileKind{idl.FileKindYAML, idl.FileKindYAML, idl.FileKindProtobuf}, kinds)

	_, err = memoryFS(t, map[string]string{"empty/README.md": "x"}).Open(ctx, "/empty")
	var e exc.Exception
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeFileNotFound, e.Code())
}

func TestOpenMissing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := memoryFS(t, map[string]string{"defs/a.yaml": "a"})
	_, err := f.Open(ctx, "/defs/missing.yaml")
	var e exc.Exception
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeFileNotFound, e.Code())

	multi := FileSystemMulti{f}
	_, err = multi.Open(ctx, "/defs/missing.yaml")
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeFileNotFound, e.Code())
	require.Error(t, multi.Write(ctx, "/x.go", ""))
}

func TestMultiFallsThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	first := memoryFS(t, map[string]string{"a.yaml": "first"})
	second := memoryFS(t, map[string]string{"b.yaml": "second"})
	files, err := FileSystemMulti{first, second}.Open(ctx, "/b.yaml")
	require.NoError(t, err)
	require.Equal(t, "second", readAll(t, ctx, files[0]))
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	require.Equal(t, idl.FileKindYAML, KindOf("steam.yaml"))
	require.Equal(t, idl.FileKindYAML, KindOf("/a/steam.yml"))
	require.Equal(t, idl.FileKindProtobuf, KindOf("steam.proto"))
	require.Equal(t, idl.FileKindNone, KindOf("steam.json"))
}

func TestWriteLocal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	root := t.TempDir()
	f, err := NewFileSystemLocal(root)
	require.NoError(t, err)
	require.NoError(t, f.Write(ctx, "/steam/enums.gen.go", "package steam\n"))
	files, err := f.Open(ctx, "/steam/enums.gen.go")
	require.NoError(t, err)
	require.Equal(t, "package steam\n", readAll(t, ctx, files[0]))

	require.NoError(t, f.Write(ctx, "/steam/enums.gen.go", "package steam\n\nconst X = 1\n"))
	require.Equal(t, "package steam\n\nconst X = 1\n", readAll(t, ctx, files[0]))
	entries, err := os.ReadDir(filepath.Join(root, "steam"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestWriteStaysInRoot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	root := t.TempDir()
	f, err := NewFileSystemLocal(root)
	require.NoError(t, err)
	require.NoError(t, f.Write(ctx, "../../escape.go", "package x\n"))
	_, err = os.Stat(filepath.Join(root, "escape.go"))
	require.NoError(t, err)
}

func TestContentTooLarge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := NewFileString("/big.yaml", strings.Repeat("#", MaxDefinitionSize+1))
	_, err := f.Content(ctx)
	var e exc.Exception
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeFileTooLarge, e.Code())

	f = NewFileString("/ok.yaml", "package: steam\n")
	require.Equal(t, idl.FileKindYAML, f.Kind(ctx))
	require.Equal(t, "package: steam\n", readAll(t, ctx, f))
}

func TestContentCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFileString("/ok.yaml", "package: steam\n").Content(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMultiReportsUnreadable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	broken, err := NewFileSystemLocal("/", WithOptionFSFactory(func(string) iofs.FS {
		return deniedFS{}
	}))
	require.NoError(t, err)
	fallback := memoryFS(t, map[string]string{"other.yaml": "x"})
	_, err = FileSystemMulti{broken, fallback}.Open(ctx, "/steam.yaml")
	var e exc.Exception
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodePermissionDenied, e.Code())
}

type deniedFS struct{}

func (deniedFS) Open(name string) (iofs.File, error) {
	return nil, &iofs.PathError{Op: "open", Path: name, Err: iofs.ErrPermission}
}
