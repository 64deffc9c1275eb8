package filelog

// Level identifies the severity of a record. The numeric values are part
// of the on-disk contract consumers may rely on.
type Level int

const (
	LevelError Level = 1
	LevelWarn  Level = 2
	LevelInfo  Level = 3
	LevelDebug Level = 4
)

// String returns the three-letter level name used in record lines.
// Values outside the defined set render as "???" rather than failing.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERR"
	case LevelWarn:
		return "WAR"
	case LevelInfo:
		return "INF"
	case LevelDebug:
		return "DBG"
	default:
		return "???"
	}
}
