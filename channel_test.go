package filelog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestChannel creates an active channel writing into a temp dir.
func newTestChannel(t testing.TB) (*Channel, string) {
	t.Helper()
	dir := t.TempDir()
	ch, err := Start(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ch.End() })
	return ch, dir
}

func TestChannel_Start(t *testing.T) {
	t.Run("derives active path as slot zero", func(t *testing.T) {
		ch, err := Start("C:/logs/app.log")
		require.NoError(t, err)
		assert.Equal(t, "C:/logs/app_0.log", ch.ActivePath())
	})

	t.Run("applies defaults", func(t *testing.T) {
		ch, _ := newTestChannel(t)
		cfg := ch.Config()
		assert.Equal(t, DefaultSizeThresholdKB, cfg.SizeThresholdKB)
		assert.Equal(t, DefaultMaxBackups, cfg.MaxBackups)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Start("")
		require.Error(t, err)
		assert.True(t, IsPrecondition(err))
		assert.Contains(t, err.Error(), errMsgEmptyPath)
	})

	t.Run("nil channel", func(t *testing.T) {
		var ch *Channel
		err := ch.Start("app.log")
		require.Error(t, err)
		assert.True(t, IsPrecondition(err))
	})

	t.Run("restart rebinds an active channel", func(t *testing.T) {
		dir := t.TempDir()
		ch, err := Start(filepath.Join(dir, "first.log"))
		require.NoError(t, err)

		require.NoError(t, ch.Start(filepath.Join(dir, "second.log")))
		assert.Equal(t, filepath.Join(dir, "second_0.log"), ch.ActivePath())
	})
}

func TestChannel_End(t *testing.T) {
	t.Run("writes after end are rejected", func(t *testing.T) {
		ch, _ := newTestChannel(t)
		require.NoError(t, ch.End())

		err := ch.Write(LevelInfo, "too late")
		require.Error(t, err)
		assert.True(t, IsPrecondition(err))
		assert.Contains(t, err.Error(), errMsgNotActive)
	})

	t.Run("end does not delete files", func(t *testing.T) {
		ch, _ := newTestChannel(t)
		require.NoError(t, ch.Write(LevelInfo, "kept"))
		path := ch.ActivePath()
		require.NoError(t, ch.End())
		assert.FileExists(t, path)
	})

	t.Run("multiple end calls", func(t *testing.T) {
		ch, _ := newTestChannel(t)
		require.NoError(t, ch.End())
		require.NoError(t, ch.End())
	})

	t.Run("nil channel", func(t *testing.T) {
		var ch *Channel
		err := ch.End()
		require.Error(t, err)
		assert.True(t, IsPrecondition(err))
	})

	t.Run("start after end reactivates", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "app.log")
		ch, err := Start(path)
		require.NoError(t, err)
		require.NoError(t, ch.End())
		require.Error(t, ch.Write(LevelInfo, "rejected"))

		require.NoError(t, ch.Start(path))
		require.NoError(t, ch.Write(LevelInfo, "accepted"))
	})
}

func TestChannel_Configure(t *testing.T) {
	t.Run("applies new knobs", func(t *testing.T) {
		ch, _ := newTestChannel(t)
		require.NoError(t, ch.Configure(Config{SizeThresholdKB: 2, MaxBackups: 5}))
		cfg := ch.Config()
		assert.Equal(t, 2, cfg.SizeThresholdKB)
		assert.Equal(t, 5, cfg.MaxBackups)
	})

	t.Run("zero threshold rejected", func(t *testing.T) {
		ch, _ := newTestChannel(t)
		err := ch.Configure(Config{SizeThresholdKB: 0, MaxBackups: 3})
		require.Error(t, err)
		assert.True(t, IsPrecondition(err))
		assert.Contains(t, err.Error(), errMsgConfigInvalid)
	})

	t.Run("negative backups rejected", func(t *testing.T) {
		ch, _ := newTestChannel(t)
		err := ch.Configure(Config{SizeThresholdKB: 1, MaxBackups: -1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgConfigInvalid)
	})

	t.Run("invalid config leaves channel unchanged", func(t *testing.T) {
		ch, _ := newTestChannel(t)
		require.Error(t, ch.Configure(Config{SizeThresholdKB: -3}))
		cfg := ch.Config()
		assert.Equal(t, DefaultSizeThresholdKB, cfg.SizeThresholdKB)
		assert.Equal(t, DefaultMaxBackups, cfg.MaxBackups)
	})

	t.Run("inactive channel rejected", func(t *testing.T) {
		ch, _ := newTestChannel(t)
		require.NoError(t, ch.End())
		err := ch.Configure(Config{SizeThresholdKB: 1, MaxBackups: 1})
		require.Error(t, err)
		assert.True(t, IsPrecondition(err))
	})
}
