package resonix

import (
	"errors"
	"io"
	"io/fs"
	"sync"
	"sync/atomic"

	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

// The engine performs all media access through caller-installed hooks,
// invoked from its stream and asynchronous-load threads. The bridge
// below adapts those raw hooks to Go interfaces through the same
// registry-and-containment pattern as the callback trampolines.

// File is one open media resource served to the engine.
type File interface {
	io.Reader
	io.Closer
	// SeekTo positions the next Read at an absolute byte offset.
	SeekTo(pos uint32) error
}

// FileSystem serves engine media requests synchronously.
type FileSystem interface {
	// Open returns the file and its total size in bytes. Return an
	// error wrapping fs.ErrNotExist for unknown names.
	Open(name string) (File, uint32, error)
}

// AsyncFile is one open media resource read through deferred requests.
type AsyncFile interface {
	io.Closer
	// ReadAsync services one engine read request. The implementation
	// may complete req before returning or hand it to another
	// goroutine; either way req must eventually be completed exactly
	// once. Returning a non-nil error refuses the request instead: the
	// failure travels back as the dispatch status and req must not be
	// completed at all.
	ReadAsync(req *AsyncReadRequest) error
	// CancelAsync abandons an in-flight request. After it returns the
	// request is guaranteed to have been completed with an error; a
	// late completion by the reader goroutine is discarded rather than
	// delivered stale.
	CancelAsync(req *AsyncReadRequest) error
}

// AsyncFileSystem serves engine media requests through one-shot read
// descriptors.
type AsyncFileSystem interface {
	Open(name string) (AsyncFile, uint32, error)
}

// ErrConsumed reports a completion attempt on an already-completed
// async read request.
var ErrConsumed = errors.New("resonix: async read request already completed")

// AsyncReadRequest is one in-flight engine-issued read. It exposes the
// requested range, a writable view of the engine's destination buffer,
// and a one-shot completion. Exactly one of Complete or a cancellation
// consumes the request, exactly once.
type AsyncReadRequest struct {
	info *backend.AsyncReadInfo

	mu       sync.Mutex
	written  uint32
	consumed atomic.Bool
}

// Offset is the byte position in the file the engine wants to read
// from.
func (r *AsyncReadRequest) Offset() uint32 { return r.info.Offset }

// Size is the number of bytes requested.
func (r *AsyncReadRequest) Size() uint32 { return r.info.Size }

// Priority hints how urgently the engine needs the data, 0 (low) to
// 100 (audio will starve without it).
func (r *AsyncReadRequest) Priority() int32 { return r.info.Priority }

// Write copies p into the engine's destination buffer at the current
// cursor. It never writes past the requested size; excess bytes are
// dropped and the short count returned.
func (r *AsyncReadRequest) Write(p []byte) (int, error) {
	if r.consumed.Load() {
		return 0, ErrConsumed
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n := copy(r.info.Buffer[r.written:], p)
	r.written += uint32(n)
	return n, nil
}

// Complete consumes the request and reports the outcome to the engine.
// A nil err with fewer bytes written than requested signals the
// distinct end-of-data condition, not failure. Completing a request
// twice (or after cancellation) returns ErrConsumed and reports
// nothing.
func (r *AsyncReadRequest) Complete(err error) error {
	if !r.consumed.CompareAndSwap(false, true) {
		return ErrConsumed
	}
	untrackRequest(r.info)
	r.mu.Lock()
	written := r.written
	r.mu.Unlock()
	switch {
	case err != nil:
		r.info.Done(written, fsErrStatus(err))
	case written < r.info.Size:
		r.info.Done(written, backend.StatusFileEOF)
	default:
		r.info.Done(written, backend.StatusOK)
	}
	return nil
}

// abandon consumes the request without notifying the engine. The
// refusal path reports through the dispatch return status; the engine
// still owns the request, so invoking Done as well would hand it a
// second signal for a request it may already have freed.
func (r *AsyncReadRequest) abandon() {
	r.consumed.Store(true)
}

// cancel consumes the request on behalf of the engine's cancellation
// path. If a reader goroutine already completed it, this is a no-op.
func (r *AsyncReadRequest) cancel() {
	if !r.consumed.CompareAndSwap(false, true) {
		return
	}
	r.info.Done(0, backend.StatusFileDiskEjected)
}

// fsErrStatus maps a hook error onto the closed status set. Typed
// wrapper errors keep their exact code; fs.ErrNotExist and io.EOF get
// their distinguished codes; anything else is a generic bad-file.
func fsErrStatus(err error) backend.Status {
	var e Error
	if errors.As(err, &e) {
		return backend.Status(e.Code)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return backend.StatusFileNotFound
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return backend.StatusFileEOF
	}
	return backend.StatusFileBad
}

// Open-file registry. Unlike callback registrations, file handles are
// deleted on close.
var (
	fileMu   sync.Mutex
	fileNext uintptr = 1
	files            = map[uintptr]any{}
)

func putFile(f any) uintptr {
	fileMu.Lock()
	h := fileNext
	fileNext++
	files[h] = f
	fileMu.Unlock()
	return h
}

func getFile(h uintptr) (any, bool) {
	fileMu.Lock()
	f, ok := files[h]
	fileMu.Unlock()
	return f, ok
}

func delFile(h uintptr) {
	fileMu.Lock()
	delete(files, h)
	fileMu.Unlock()
}

// SetFileSystem replaces the engine's media access with fsys.
// blockAlign, when positive, asks the engine to issue reads in
// multiples of that many bytes.
func (s System) SetFileSystem(fsys FileSystem, blockAlign int32) error {
	ctx := registerHandler(fsys)
	raw := backend.RawFileSystem{
		Open:  dispatchFileOpen,
		Close: dispatchFileClose,
		Read:  dispatchFileRead,
		Seek:  dispatchFileSeek,
	}
	return statusErr(eng().SystemSetFileSystem(s.addr, raw, blockAlign, ctx))
}

// SetAsyncFileSystem replaces the engine's media access with fsys,
// serving reads through one-shot descriptors that may be completed
// from any goroutine.
func (s System) SetAsyncFileSystem(fsys AsyncFileSystem, blockAlign int32) error {
	ctx := registerHandler(fsys)
	raw := backend.RawFileSystem{
		Open:        dispatchAsyncFileOpen,
		Close:       dispatchFileClose,
		ReadAsync:   dispatchFileReadAsync,
		CancelAsync: dispatchFileCancelAsync,
	}
	return statusErr(eng().SystemSetFileSystem(s.addr, raw, blockAlign, ctx))
}

func dispatchFileOpen(name string, ctx uintptr) (handle uintptr, size uint32, st backend.Status) {
	defer containPanic(&st, 0)
	raw, ok := handlerFor(ctx)
	if !ok {
		return 0, 0, backend.StatusInternal
	}
	fsys, ok := raw.(FileSystem)
	if !ok {
		return 0, 0, backend.StatusInternal
	}
	f, size, err := fsys.Open(name)
	if err != nil {
		return 0, 0, fsErrStatus(err)
	}
	return putFile(f), size, backend.StatusOK
}

func dispatchAsyncFileOpen(name string, ctx uintptr) (handle uintptr, size uint32, st backend.Status) {
	defer containPanic(&st, 0)
	raw, ok := handlerFor(ctx)
	if !ok {
		return 0, 0, backend.StatusInternal
	}
	fsys, ok := raw.(AsyncFileSystem)
	if !ok {
		return 0, 0, backend.StatusInternal
	}
	f, size, err := fsys.Open(name)
	if err != nil {
		return 0, 0, fsErrStatus(err)
	}
	return putFile(f), size, backend.StatusOK
}

func dispatchFileClose(handle uintptr, _ uintptr) (st backend.Status) {
	defer containPanic(&st, handle)
	f, ok := getFile(handle)
	if !ok {
		return backend.StatusInvalidHandle
	}
	delFile(handle)
	c, ok := f.(io.Closer)
	if !ok {
		return backend.StatusOK
	}
	if err := c.Close(); err != nil {
		return fsErrStatus(err)
	}
	return backend.StatusOK
}

func dispatchFileRead(handle uintptr, buf []byte, _ uintptr) (read uint32, st backend.Status) {
	defer containPanic(&st, handle)
	raw, ok := getFile(handle)
	if !ok {
		return 0, backend.StatusInvalidHandle
	}
	f, ok := raw.(File)
	if !ok {
		return 0, backend.StatusInvalidHandle
	}
	// A short read is legitimate end-of-stream for the engine, signaled
	// with the distinct end-of-data status rather than an error.
	n, err := io.ReadFull(f, buf)
	switch {
	case err == nil:
		return uint32(n), backend.StatusOK
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return uint32(n), backend.StatusFileEOF
	default:
		return uint32(n), fsErrStatus(err)
	}
}

func dispatchFileSeek(handle uintptr, pos uint32, _ uintptr) (st backend.Status) {
	defer containPanic(&st, handle)
	raw, ok := getFile(handle)
	if !ok {
		return backend.StatusInvalidHandle
	}
	f, ok := raw.(File)
	if !ok {
		return backend.StatusInvalidHandle
	}
	if err := f.SeekTo(pos); err != nil {
		return fsErrStatus(err)
	}
	return backend.StatusOK
}

func dispatchFileReadAsync(info *backend.AsyncReadInfo, _ uintptr) (st backend.Status) {
	defer containPanic(&st, info.Handle)
	raw, ok := getFile(info.Handle)
	if !ok {
		return backend.StatusInvalidHandle
	}
	f, ok := raw.(AsyncFile)
	if !ok {
		return backend.StatusInvalidHandle
	}
	req := &AsyncReadRequest{info: info}
	trackRequest(info, req)
	if err := f.ReadAsync(req); err != nil {
		// The handler refused the request outright. The error status
		// is the only signal the engine gets; completing the request
		// too would double-report it.
		req.abandon()
		untrackRequest(info)
		return fsErrStatus(err)
	}
	return backend.StatusOK
}

func dispatchFileCancelAsync(info *backend.AsyncReadInfo, _ uintptr) (st backend.Status) {
	defer containPanic(&st, info.Handle)
	req, ok := takeRequest(info)
	if !ok {
		return backend.StatusOK
	}
	if raw, found := getFile(info.Handle); found {
		if f, isAsync := raw.(AsyncFile); isAsync {
			if err := f.CancelAsync(req); err != nil {
				req.cancel()
				return fsErrStatus(err)
			}
		}
	}
	// Whatever the handler did, the request must not complete later
	// with stale data.
	req.cancel()
	return backend.StatusOK
}

// In-flight request tracking for cancellation. The engine identifies a
// request by its descriptor address.
var (
	reqMu    sync.Mutex
	requests = map[*backend.AsyncReadInfo]*AsyncReadRequest{}
)

func trackRequest(info *backend.AsyncReadInfo, req *AsyncReadRequest) {
	reqMu.Lock()
	requests[info] = req
	reqMu.Unlock()
}

func untrackRequest(info *backend.AsyncReadInfo) {
	reqMu.Lock()
	delete(requests, info)
	reqMu.Unlock()
}

func takeRequest(info *backend.AsyncReadInfo) (*AsyncReadRequest, bool) {
	reqMu.Lock()
	req, ok := requests[info]
	delete(requests, info)
	reqMu.Unlock()
	return req, ok
}
