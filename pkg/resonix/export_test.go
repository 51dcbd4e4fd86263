package resonix

import "github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"

// Test hooks.

func ResetLayoutChecks() { resetLayoutChecks() }

func ResultStatus(err error) backend.Status { return resultStatus(err) }

func StatusErr(st backend.Status) error { return statusErr(st) }
func GetStringProtocol(fn func([]byte) (int32, backend.Status)) (string, error) {
	return getString(fn)
}
