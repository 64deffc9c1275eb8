package filelog

import (
	"path/filepath"
	"strings"

	"github.com/Station-Manager/errors"
)

// splitPath decomposes a log file path into its directory (including any
// drive or volume prefix), base name without extension, and extension
// (including the dot). Paths without an extension yield an empty extension;
// paths without a directory component yield ".".
func splitPath(path string) (dir, base, ext string, err error) {
	const op errors.Op = "filelog.splitPath"
	if path == emptyString {
		return emptyString, emptyString, emptyString,
			errors.New(op).Err(errPrecondition).Msg(errMsgEmptyPath)
	}

	dir = filepath.Dir(path)
	ext = filepath.Ext(path)
	base = strings.TrimSuffix(filepath.Base(path), ext)
	return dir, base, ext, nil
}
