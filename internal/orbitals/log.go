package orbitals

import "log/slog"

// DebugLog logs at debug level through the default slog logger when Debug is set.
func DebugLog(msg string, args ...any) {
	if !Debug {
		return
	}
	slog.Debug(msg, args...)
}
