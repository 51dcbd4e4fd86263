// Package logging provides a minimal logging facade for the resonix
// wrapper.
//
// The Logger interface wraps a subset of the standard library's
// log/slog functionality. It exists so that the wrapper's only
// unsolicited output, the best-effort diagnostic emitted when a caught
// panic is contained at a callback boundary, can be redirected or
// silenced by the embedding application:
//
//	handler := slog.NewJSONHandler(os.Stderr, nil)
//	resonix.SetLogger(logging.New(slog.New(handler)))
//
// Passing nil to New binds to slog.Default().
package logging
