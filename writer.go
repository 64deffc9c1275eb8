package filelog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Station-Manager/errors"
)

// Write appends one plain record to the channel's live file. The rotation
// check, the append, and the file close happen under the channel lock, so
// concurrent writers always produce whole, ordered lines.
//
// The file handle is opened and closed per call; handles are never held
// across writes. On an I/O failure the record of this call is dropped,
// though a rotation triggered by the check may already have happened.
func (c *Channel) Write(level Level, format string, args ...interface{}) error {
	const op errors.Op = "filelog.Channel.Write"
	if c == nil {
		return preconditionError(op, errMsgNilChannel)
	}
	if format == emptyString {
		return preconditionError(op, errMsgEmptyFormat)
	}
	if !c.active.Load() {
		return preconditionError(op, errMsgNotActive)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.checkAndRotate()
	msg := fmt.Sprintf(format, args...)
	return c.appendLine(op, formatRecord(currentTime(), level, msg))
}

// WriteWithLocation appends one record carrying the call-site triple.
// The directory portion of file is stripped before formatting.
func (c *Channel) WriteWithLocation(level Level, file string, line int, function, format string, args ...interface{}) error {
	const op errors.Op = "filelog.Channel.WriteWithLocation"
	if c == nil {
		return preconditionError(op, errMsgNilChannel)
	}
	if format == emptyString {
		return preconditionError(op, errMsgEmptyFormat)
	}
	if file == emptyString || function == emptyString {
		return preconditionError(op, errMsgEmptyCallSite)
	}
	if !c.active.Load() {
		return preconditionError(op, errMsgNotActive)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.checkAndRotate()
	msg := fmt.Sprintf(format, args...)
	record := formatRecordWithLocation(currentTime(), level, filepath.Base(file), line, function, msg)
	return c.appendLine(op, record)
}

// WriteCaller behaves like WriteWithLocation with the call site of the
// caller filled in automatically. If the call site cannot be resolved the
// record falls back to the plain layout.
func (c *Channel) WriteCaller(level Level, format string, args ...interface{}) error {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return c.Write(level, format, args...)
	}
	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = shortFuncName(fn.Name())
	}
	return c.WriteWithLocation(level, file, line, function, format, args...)
}

// appendLine opens the live file in append mode (creating it after a
// rotation left slot 0 vacant), writes the already-terminated record in
// one call, and closes the handle. c.mu must be held by the caller; the
// lock is released on every exit path via the caller's defer.
func (c *Channel) appendLine(op errors.Op, record string) error {
	f, err := os.OpenFile(c.activePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return ioError(op, errMsgOpenFailed, err)
	}
	if _, err := f.WriteString(record); err != nil {
		_ = f.Close()
		return ioError(op, errMsgWriteFailed, err)
	}
	if err := f.Close(); err != nil {
		return ioError(op, errMsgCloseFailed, err)
	}
	return nil
}

// shortFuncName strips the package import path from a runtime function
// name, e.g. "github.com/acme/app/web.(*Server).run" -> "web.(*Server).run".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
