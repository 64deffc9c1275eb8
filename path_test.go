package filelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		dir  string
		base string
		ext  string
	}{
		{"full path", "C:/logs/app.log", "C:/logs", "app", ".log"},
		{"unix path", "/var/log/app.log", "/var/log", "app", ".log"},
		{"no directory", "app.log", ".", "app", ".log"},
		{"no extension", "/var/log/app", "/var/log", "app", ""},
		{"double extension", "/tmp/archive.tar.gz", "/tmp", "archive.tar", ".gz"},
		{"dotfile", "/home/user/.config", "/home/user", ".config", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, base, ext, err := splitPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.dir, dir)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestSplitPathEmpty(t *testing.T) {
	_, _, _, err := splitPath("")
	require.Error(t, err)
	assert.True(t, IsPrecondition(err))
	assert.Contains(t, err.Error(), errMsgEmptyPath)
}
