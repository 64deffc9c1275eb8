package filelog

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

const timestampLayout = "2006/01/02, 15:04:05.000"

// builderPool recycles the builders used to assemble record lines.
var builderPool = sync.Pool{
	New: func() interface{} {
		return new(strings.Builder)
	},
}

// truncateMessage clips a formatted message to the record length contract.
// The clipping is silent; see the package documentation.
func truncateMessage(msg string) string {
	if len(msg) > maxMessageLen {
		return msg[:maxMessageLen]
	}
	return msg
}

// formatRecord renders the plain record layout:
//
//	DATE, TIME, LEVEL, MESSAGE
func formatRecord(t time.Time, level Level, msg string) string {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	defer builderPool.Put(b)

	b.WriteString(t.Format(timestampLayout))
	b.WriteString(", ")
	b.WriteString(level.String())
	b.WriteString(", ")
	b.WriteString(truncateMessage(msg))
	b.WriteString(lineTerminator)
	return b.String()
}

// formatRecordWithLocation renders the call-site record layout:
//
//	DATE, TIME, LEVEL, FILE(LINE), FUNCTION, MESSAGE
//
// file is expected to already be stripped of its directory.
func formatRecordWithLocation(t time.Time, level Level, file string, line int, function, msg string) string {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	defer builderPool.Put(b)

	b.WriteString(t.Format(timestampLayout))
	b.WriteString(", ")
	b.WriteString(level.String())
	b.WriteString(", ")
	b.WriteString(file)
	b.WriteString("(")
	b.WriteString(strconv.Itoa(line))
	b.WriteString("), ")
	b.WriteString(function)
	b.WriteString(", ")
	b.WriteString(truncateMessage(msg))
	b.WriteString(lineTerminator)
	return b.String()
}
