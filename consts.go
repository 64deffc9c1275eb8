package filelog

const (
	// DefaultSizeThresholdKB is the rotation threshold a channel starts with.
	DefaultSizeThresholdKB = 1024
	// DefaultMaxBackups is the number of rotated files a channel retains
	// beyond the live one.
	DefaultMaxBackups = 3

	// maxMessageLen bounds the formatted message portion of a record.
	// Anything longer is silently clipped.
	maxMessageLen = 255

	lineTerminator = "\r\n"
	emptyString    = ""
)

const (
	errMsgNilChannel    = "Log channel is nil."
	errMsgNotActive     = "Log channel is not active."
	errMsgEmptyPath     = "Log file path is empty."
	errMsgEmptyFormat   = "Format string is empty."
	errMsgEmptyCallSite = "Call-site file or function is empty."
	errMsgConfigInvalid = "Channel configuration is invalid."
	errMsgOpenFailed    = "Opening the log file failed."
	errMsgWriteFailed   = "Appending to the log file failed."
	errMsgCloseFailed   = "Closing the log file failed."
)
