package backend

// Status is a native engine status code. The enumeration is closed:
// every code the engine can return appears here, and the public error
// layer maps each one 1:1 without coarsening.
type Status int32

const (
	StatusOK Status = iota
	StatusBadCommand
	StatusChannelAlloc
	StatusChannelStolen
	StatusDSPConnection
	StatusDSPFormat
	StatusDSPNotFound
	StatusFileBad
	StatusFileCouldNotSeek
	StatusFileDiskEjected
	StatusFileEOF
	StatusFileNotFound
	StatusFormat
	StatusHeaderMismatch
	StatusInitialization
	StatusInitialized
	StatusInternal
	StatusInvalidFloat
	StatusInvalidHandle
	StatusInvalidParam
	StatusInvalidPosition
	StatusInvalidSpeaker
	StatusInvalidSyncPoint
	StatusInvalidThread
	StatusMemory
	StatusNeedsHardware
	StatusNotReady
	StatusOutputAllocated
	StatusOutputCreateBuffer
	StatusOutputDriverCall
	StatusOutputFormat
	StatusOutputInit
	StatusOutputNoDrivers
	StatusPlugin
	StatusPluginMissing
	StatusPluginResource
	StatusPluginVersion
	StatusRecord
	StatusSubsounds
	StatusTagNotFound
	StatusTooManyChannels
	StatusTruncated
	StatusUnimplemented
	StatusUninitialized
	StatusUnsupported
	StatusVersion

	// StatusUnbuilt is wrapper-local: the native engine was not linked
	// into the current binary. It never originates from the engine.
	StatusUnbuilt

	statusCount // keep last
)

var statusNames = [...]string{
	StatusOK:                 "no errors",
	StatusBadCommand:         "command issued on a resource that cannot perform it",
	StatusChannelAlloc:       "could not allocate a channel",
	StatusChannelStolen:      "channel was stolen by a higher priority sound",
	StatusDSPConnection:      "dsp connection error",
	StatusDSPFormat:          "dsp units of incompatible format",
	StatusDSPNotFound:        "dsp unit not found",
	StatusFileBad:            "media file is corrupt",
	StatusFileCouldNotSeek:   "media does not support seeking",
	StatusFileDiskEjected:    "media was ejected while reading",
	StatusFileEOF:            "end of file",
	StatusFileNotFound:       "file not found",
	StatusFormat:             "unsupported media format",
	StatusHeaderMismatch:     "header version mismatch between engine and plugin",
	StatusInitialization:     "engine failed to initialize",
	StatusInitialized:        "call cannot be made after initialization",
	StatusInternal:           "internal engine error",
	StatusInvalidFloat:       "invalid floating point value",
	StatusInvalidHandle:      "invalid resource handle",
	StatusInvalidParam:       "invalid parameter",
	StatusInvalidPosition:    "invalid seek position",
	StatusInvalidSpeaker:     "invalid speaker for the speaker mode",
	StatusInvalidSyncPoint:   "sync point belongs to another sound",
	StatusInvalidThread:      "call not supported on this thread",
	StatusMemory:             "out of memory",
	StatusNeedsHardware:      "requires hardware the output mode lacks",
	StatusNotReady:           "operation pending, resource not ready",
	StatusOutputAllocated:    "output device already in use",
	StatusOutputCreateBuffer: "could not create output buffer",
	StatusOutputDriverCall:   "output driver call failed",
	StatusOutputFormat:       "format not supported by output device",
	StatusOutputInit:         "output device failed to initialize",
	StatusOutputNoDrivers:    "no output drivers available",
	StatusPlugin:             "unspecified plugin error",
	StatusPluginMissing:      "plugin code is missing",
	StatusPluginResource:     "plugin resource unavailable",
	StatusPluginVersion:      "plugin version unsupported",
	StatusRecord:             "recording failure",
	StatusSubsounds:          "invalid subsound operation",
	StatusTagNotFound:        "tag not found",
	StatusTooManyChannels:    "channel limit exceeded",
	StatusTruncated:          "supplied buffer was too small",
	StatusUnimplemented:      "feature not implemented in this engine build",
	StatusUninitialized:      "engine not initialized",
	StatusUnsupported:        "feature not supported by this engine",
	StatusVersion:            "engine version mismatch",
	StatusUnbuilt:            "native engine not built into this binary",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) || statusNames[s] == "" {
		return "unknown engine status"
	}
	return statusNames[s]
}

// Count reports the number of defined status codes. The internalcheck
// tests use it to verify the public error layer stays exhaustive.
func Count() int32 { return int32(statusCount) }
