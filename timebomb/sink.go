package timebomb

import "log/slog"

// Sink receives human-readable warnings. It is called synchronously and is
// not retained after the call returns.
type Sink func(msg string)

// LogSink writes warnings to logger at warn level. A nil logger resolves
// slog.Default() on every call, so replacing the default logger takes effect
// immediately.
func LogSink(logger *slog.Logger) Sink {
	return func(msg string) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.Warn(msg, slog.String("event", "timebomb.warning"))
	}
}
