package filelog

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Filesystem and clock hooks, kept as variables so tests can substitute
// them without touching real files or the wall clock.
var (
	currentTime = time.Now
	osStat      = os.Stat
	osRename    = os.Rename
	osRemove    = os.Remove
)

// backupName returns the path for the given backup slot:
// <dir>/<name>_<index><ext>. Slot 0 is the live file.
// The caller must hold c.mu or otherwise own the channel.
func (c *Channel) backupName(index int) string {
	return filepath.Join(c.directory, c.baseName+"_"+strconv.Itoa(index)+c.extension)
}

// checkAndRotate rotates the backup chain if the active file has reached
// the size threshold. c.mu must be held by the caller.
//
// The shift evicts the oldest slot, then renames each remaining slot up by
// one, leaving slot 0 vacant for the next append to recreate. Rename and
// remove failures are ignored: a leftover target from an earlier partial
// rotation is simply overwritten on the next cycle (last-write-wins).
func (c *Channel) checkAndRotate() {
	kb, ok := fileSizeKB(c.activePath)
	if !ok || kb < c.sizeThresholdKB {
		return
	}

	oldest := c.backupName(c.maxBackups)
	if fi, err := osStat(oldest); err == nil && fi.Mode().IsRegular() {
		_ = osRemove(oldest)
	}
	for i := c.maxBackups - 1; i >= 0; i-- {
		src := c.backupName(i)
		if fi, err := osStat(src); err == nil && fi.Mode().IsRegular() {
			_ = osRename(src, c.backupName(i+1))
		}
	}
}

// fileSizeKB measures the file's size in whole kilobytes (size >> 10).
// A missing or unreadable file reports ok=false and rotation is skipped.
// The low 10 bits are discarded, so the file may exceed the threshold by
// up to 1023 bytes before a rotation triggers.
func fileSizeKB(path string) (int64, bool) {
	fi, err := osStat(path)
	if err != nil {
		return 0, false
	}
	return fi.Size() >> 10, true
}
