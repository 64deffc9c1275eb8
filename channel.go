package filelog

import (
	"sync"

	"github.com/Station-Manager/errors"
	"go.uber.org/atomic"
)

// Channel is an independent, lock-guarded log stream bound to one file
// path and its own rotation configuration. A Channel is exclusively owned
// by its creator; distinct channels share no state and never contend.
type Channel struct {
	directory string
	baseName  string
	extension string

	// activePath always resolves to backup slot 0.
	activePath string

	sizeThresholdKB int64
	maxBackups      int

	mu     sync.Mutex
	active atomic.Bool
}

// Config holds the rotation knobs a caller may change after Start.
type Config struct {
	// SizeThresholdKB is the size, in 1024-byte units, the active file
	// must reach before the next write rotates it.
	SizeThresholdKB int `validate:"required,gt=0"`
	// MaxBackups is the number of rotated files retained beyond the
	// live one.
	MaxBackups int `validate:"gte=0"`
}

// Start creates a channel for the given log file path and marks it active.
// The path is decomposed once; the live file is <dir>/<name>_0<ext>. The
// channel starts with DefaultSizeThresholdKB and DefaultMaxBackups; use
// Configure to change them. No filesystem I/O is performed here, so a
// missing directory only surfaces on the first write.
func Start(path string) (*Channel, error) {
	ch := &Channel{}
	if err := ch.Start(path); err != nil {
		return nil, err
	}
	return ch, nil
}

// Start (re)initializes the channel in place. Calling it on an already
// active channel rebinds it to the new path; callers must not do so while
// other goroutines still write through it.
func (c *Channel) Start(path string) error {
	const op errors.Op = "filelog.Channel.Start"
	if c == nil {
		return preconditionError(op, errMsgNilChannel)
	}
	if path == emptyString {
		return preconditionError(op, errMsgEmptyPath)
	}

	dir, base, ext, err := splitPath(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.directory = dir
	c.baseName = base
	c.extension = ext
	c.sizeThresholdKB = DefaultSizeThresholdKB
	c.maxBackups = DefaultMaxBackups
	c.activePath = c.backupName(0)
	c.mu.Unlock()

	c.active.Store(true)
	return nil
}

// End marks the channel inactive. Any in-flight write is allowed to finish
// first; subsequent writes fail with a precondition status. No log files
// are deleted. It is safe to call End more than once.
func (c *Channel) End() error {
	const op errors.Op = "filelog.Channel.End"
	if c == nil {
		return preconditionError(op, errMsgNilChannel)
	}

	c.mu.Lock()
	c.active.Store(false)
	c.mu.Unlock()
	return nil
}

// Configure applies new rotation knobs to an active channel. The
// configuration is validated before anything is touched; an invalid one
// leaves the channel unchanged.
func (c *Channel) Configure(cfg Config) error {
	const op errors.Op = "filelog.Channel.Configure"
	if c == nil {
		return preconditionError(op, errMsgNilChannel)
	}
	if !c.active.Load() {
		return preconditionError(op, errMsgNotActive)
	}
	if err := validateConfig(&cfg); err != nil {
		return err
	}

	c.mu.Lock()
	c.sizeThresholdKB = int64(cfg.SizeThresholdKB)
	c.maxBackups = cfg.MaxBackups
	c.mu.Unlock()
	return nil
}

// Config returns a snapshot of the channel's current rotation knobs.
func (c *Channel) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Config{
		SizeThresholdKB: int(c.sizeThresholdKB),
		MaxBackups:      c.maxBackups,
	}
}

// ActivePath returns the path of the file currently being appended to,
// which is always backup slot 0.
func (c *Channel) ActivePath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activePath
}
