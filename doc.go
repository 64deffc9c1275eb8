// Package filelog provides a concurrency-safe, size-rotating text logger.
// Each Channel owns one log file and appends timestamped, leveled records
// to it; once the file reaches the configured size threshold the backup
// chain is rotated so that the live file is always backup slot 0.
//
// Key features
//   - Per-channel mutual exclusion: the rotation check and the append are
//     one atomic unit, so concurrent writers never interleave records or
//     observe a half-rotated backup chain
//   - Numbered backup chain: <dir>/<name>_<i><ext> for i in 0..MaxBackups,
//     with the oldest generation evicted on rotation
//   - Two record layouts: plain, and with a call-site triple for debugging
//   - zerolog bridge: NewZerologWriter lets an rs/zerolog logger emit
//     through a channel
//
// Record lines use a fixed text layout terminated by CRLF:
//
//	2026/08/29, 13:45:12.123, INF, message
//	2026/08/29, 13:45:12.123, DBG, main.go(42), main.run, message
//
// Messages longer than 255 bytes are silently truncated; this is the
// documented record length contract, not an error.
//
// Known limitations
//   - The size threshold is measured in whole kilobytes (size >> 10), so
//     the active file may grow up to 1023 bytes past the threshold before
//     the next write rotates it.
//   - Two processes sharing one log path are not coordinated; rotation is
//     only safe within a single process.
//   - Durability is that of a buffered file append; there is no fsync.
//
// Typical usage
//
//	ch, err := filelog.Start("logs/app.log")
//	if err != nil { panic(err) }
//	defer ch.End()
//
//	ch.Write(filelog.LevelInfo, "processed %d items", n)
//	ch.WriteCaller(filelog.LevelDebug, "retrying after %v", delay)
package filelog
