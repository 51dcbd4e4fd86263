package resonix

import (
	"unicode/utf8"

	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

// initialStringBuf is the first-attempt capacity for variable-length
// text queries. Most engine names fit.
const initialStringBuf = 256

// getString runs the bounded growing-buffer protocol over a
// fixed-buffer engine query. fn fills buf with NUL-terminated text and
// reports the required size when the buffer was too small; a Truncated
// status triggers a retry with a buffer sized to that requirement, or
// double the previous attempt when none was reported. Any other
// failure propagates immediately. The loop is well-founded: the buffer
// only grows, so the retry count is logarithmic in the final size.
func getString(fn func(buf []byte) (needed int32, st backend.Status)) (string, error) {
	buf := make([]byte, initialStringBuf)
	for {
		needed, st := fn(buf)
		switch st {
		case backend.StatusOK:
			return stringUntilNul(buf)
		case backend.StatusTruncated:
			next := len(buf) * 2
			if n := int(needed); n > len(buf) {
				next = n
			}
			buf = make([]byte, next)
		default:
			return "", statusErr(st)
		}
	}
}

// stringUntilNul validates the bytes up to the first NUL as UTF-8 and
// returns them as an owned string.
func stringUntilNul(buf []byte) (string, error) {
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	text := buf[:n]
	if !utf8.Valid(text) {
		return "", Error{Code: CodeFormat}
	}
	return string(text), nil
}
