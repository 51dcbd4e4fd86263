//go:build !resonix_thread_confined

package resonix

// In the default build handles may be used from any goroutine; the
// engine serializes its own API internally. The confined variant in
// guard_confined.go replaces these with real ownership checks.

func noteOwner() {}

func assertConfined() {}
