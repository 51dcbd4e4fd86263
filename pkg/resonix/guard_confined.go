//go:build resonix_thread_confined

package resonix

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// The confined build pins the whole binding to the goroutine that
// first touched the engine. Go cannot withhold a Send/Sync-style
// capability at compile time, so this variant trades the compile-time
// error for a deterministic panic at the first cross-goroutine call.

var owner atomic.Int64

func noteOwner() {
	owner.CompareAndSwap(0, goroutineID())
}

func assertConfined() {
	id := owner.Load()
	if id == 0 {
		return
	}
	if cur := goroutineID(); cur != id {
		panic("resonix: engine confined to goroutine " + strconv.FormatInt(id, 10) +
			", called from goroutine " + strconv.FormatInt(cur, 10))
	}
}

func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// header shape: "goroutine 123 [running]:"
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return -1
	}
	id, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		return -1
	}
	return id
}
