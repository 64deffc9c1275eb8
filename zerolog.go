package filelog

import (
	"strings"

	"github.com/rs/zerolog"
)

// NewZerologWriter returns a zerolog.LevelWriter that appends every event
// to the given channel, mapping zerolog levels onto the channel's record
// levels. Events longer than the record length contract are truncated like
// any other message.
//
//	logger := zerolog.New(filelog.NewZerologWriter(ch))
//	logger.Error().Msg("boom")
func NewZerologWriter(ch *Channel) zerolog.LevelWriter {
	return &zerologWriter{ch: ch}
}

type zerologWriter struct {
	ch *Channel
}

func (w *zerologWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.InfoLevel, p)
}

func (w *zerologWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\r\n")
	if msg == emptyString {
		return len(p), nil
	}
	if err := w.ch.Write(mapZerologLevel(level), "%s", msg); err != nil {
		return 0, err
	}
	return len(p), nil
}

func mapZerologLevel(level zerolog.Level) Level {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return LevelDebug
	case zerolog.InfoLevel:
		return LevelInfo
	case zerolog.WarnLevel:
		return LevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return LevelError
	default:
		return LevelInfo
	}
}
