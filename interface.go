package filelog

// Logger is the write surface of a Channel, for callers that inject the
// log destination rather than owning the channel themselves.
type Logger interface {
	Write(level Level, format string, args ...interface{}) error
	WriteWithLocation(level Level, file string, line int, function, format string, args ...interface{}) error
	WriteCaller(level Level, format string, args ...interface{}) error
}

var _ Logger = (*Channel)(nil)
