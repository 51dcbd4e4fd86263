package resonix

import (
	"errors"
	"fmt"

	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

// Code identifies one engine status. The set is closed and mirrors the
// native enumeration 1:1; no call site coarsens a specific code into a
// generic error.
type Code int32

const (
	CodeOK                 Code = Code(backend.StatusOK)
	CodeBadCommand         Code = Code(backend.StatusBadCommand)
	CodeChannelAlloc       Code = Code(backend.StatusChannelAlloc)
	CodeChannelStolen      Code = Code(backend.StatusChannelStolen)
	CodeDSPConnection      Code = Code(backend.StatusDSPConnection)
	CodeDSPFormat          Code = Code(backend.StatusDSPFormat)
	CodeDSPNotFound        Code = Code(backend.StatusDSPNotFound)
	CodeFileBad            Code = Code(backend.StatusFileBad)
	CodeFileCouldNotSeek   Code = Code(backend.StatusFileCouldNotSeek)
	CodeFileDiskEjected    Code = Code(backend.StatusFileDiskEjected)
	CodeFileEOF            Code = Code(backend.StatusFileEOF)
	CodeFileNotFound       Code = Code(backend.StatusFileNotFound)
	CodeFormat             Code = Code(backend.StatusFormat)
	CodeHeaderMismatch     Code = Code(backend.StatusHeaderMismatch)
	CodeInitialization     Code = Code(backend.StatusInitialization)
	CodeInitialized        Code = Code(backend.StatusInitialized)
	CodeInternal           Code = Code(backend.StatusInternal)
	CodeInvalidFloat       Code = Code(backend.StatusInvalidFloat)
	CodeInvalidHandle      Code = Code(backend.StatusInvalidHandle)
	CodeInvalidParam       Code = Code(backend.StatusInvalidParam)
	CodeInvalidPosition    Code = Code(backend.StatusInvalidPosition)
	CodeInvalidSpeaker     Code = Code(backend.StatusInvalidSpeaker)
	CodeInvalidSyncPoint   Code = Code(backend.StatusInvalidSyncPoint)
	CodeInvalidThread      Code = Code(backend.StatusInvalidThread)
	CodeMemory             Code = Code(backend.StatusMemory)
	CodeNeedsHardware      Code = Code(backend.StatusNeedsHardware)
	CodeNotReady           Code = Code(backend.StatusNotReady)
	CodeOutputAllocated    Code = Code(backend.StatusOutputAllocated)
	CodeOutputCreateBuffer Code = Code(backend.StatusOutputCreateBuffer)
	CodeOutputDriverCall   Code = Code(backend.StatusOutputDriverCall)
	CodeOutputFormat       Code = Code(backend.StatusOutputFormat)
	CodeOutputInit         Code = Code(backend.StatusOutputInit)
	CodeOutputNoDrivers    Code = Code(backend.StatusOutputNoDrivers)
	CodePlugin             Code = Code(backend.StatusPlugin)
	CodePluginMissing      Code = Code(backend.StatusPluginMissing)
	CodePluginResource     Code = Code(backend.StatusPluginResource)
	CodePluginVersion      Code = Code(backend.StatusPluginVersion)
	CodeRecord             Code = Code(backend.StatusRecord)
	CodeSubsounds          Code = Code(backend.StatusSubsounds)
	CodeTagNotFound        Code = Code(backend.StatusTagNotFound)
	CodeTooManyChannels    Code = Code(backend.StatusTooManyChannels)
	CodeTruncated          Code = Code(backend.StatusTruncated)
	CodeUnimplemented      Code = Code(backend.StatusUnimplemented)
	CodeUninitialized      Code = Code(backend.StatusUninitialized)
	CodeUnsupported        Code = Code(backend.StatusUnsupported)
	CodeVersion            Code = Code(backend.StatusVersion)
	CodeUnbuilt            Code = Code(backend.StatusUnbuilt)
)

func (c Code) String() string { return backend.Status(c).String() }

// Error is a failed engine call carrying the specific originating
// status code. Errors compare equal when their codes do, so
// errors.Is(err, resonix.ErrTruncated) distinguishes recoverable
// conditions programmatically.
type Error struct {
	Code Code
}

func (e Error) Error() string { return "resonix: " + e.Code.String() }

// Sentinel values for the conditions callers commonly branch on.
var (
	ErrNotReady      = Error{Code: CodeNotReady}
	ErrTruncated     = Error{Code: CodeTruncated}
	ErrFileEOF       = Error{Code: CodeFileEOF}
	ErrFileNotFound  = Error{Code: CodeFileNotFound}
	ErrInvalidParam  = Error{Code: CodeInvalidParam}
	ErrInvalidHandle = Error{Code: CodeInvalidHandle}
	ErrNotBuilt      = Error{Code: CodeUnbuilt}
)

// InvalidEnumError reports a raw value from the engine that does not
// match any discriminant of a wrapper-defined closed enumeration. It is
// defensive: the engine's own codes are exhaustively mapped, so seeing
// one indicates an engine newer than this wrapper.
type InvalidEnumError struct {
	Name  string
	Value int64
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("resonix: no discriminant in %s matches value %d", e.Name, e.Value)
}

// statusErr converts an engine status into the public error form.
func statusErr(st backend.Status) error {
	if st == backend.StatusOK {
		return nil
	}
	return Error{Code: Code(st)}
}

// resultStatus converts a handler result into the status handed back to
// the engine. Wrapper-local errors have no native code and map to
// StatusInvalidParam, the nearest the closed set offers.
func resultStatus(err error) backend.Status {
	if err == nil {
		return backend.StatusOK
	}
	var e Error
	if errors.As(err, &e) {
		return backend.Status(e.Code)
	}
	return backend.StatusInvalidParam
}
