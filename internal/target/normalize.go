package target

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/steamkit/enums/internal/exc"
)

// Normalize converts a definition target given on the command line into the
// rooted, slash separated form every idl.FileSystem expects.
//
// Targets are plain paths or file URIs. Relative paths are resolved against
// the search roots so "defs/steam.yaml" and "/defs/steam.yaml" name the same
// file. Any other URI scheme is rejected because definitions are only ever
// read from local roots.
func Normalize(target string) (string, exc.Exception) {
	p := strings.ReplaceAll(target, `\`, "/")
	if u, err := url.Parse(p); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		if u.Scheme != "file" {
			return "", exc.New(
				exc.Location{URI: target},
				exc.CodeUnsuportedFileSystemOperation,
				fmt.Sprintf("definitions cannot be loaded from %s:// targets", u.Scheme),
			)
		}
		p = u.Path
	}
	if p == "" {
		return "", exc.New(exc.Location{URI: target}, exc.CodeFileNotFound, "empty definition target")
	}
	return path.Join("/", p), nil
}
