package httpapi

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, requests are not logged.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch s {
	case "off":
		return LevelOff
	case "error":
		return LevelError
	case "info", "":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// global default, read once
var defaultLogLevel = parseLevel(os.Getenv("EVOSOTA_ACCESS_LOG"))

// requestLogLevel lets a single request raise or silence its access line
// with ?log= or the X-Log-Level header.
func requestLogLevel(r *http.Request) LogLevel {
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

// accessLog writes one line per request: errors at LevelError, everything
// at LevelInfo, plus query and user agent at LevelDebug.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if zlog == nil {
			next.ServeHTTP(w, r)
			return
		}
		lvl := requestLogLevel(r)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		if lvl == LevelOff || (lvl == LevelError && status < 500) {
			return
		}
		ev := zlog.Info()
		if status >= 500 {
			ev = zlog.Error()
		}
		ev = ev.Str("method", r.Method).Str("path", r.URL.Path).Int("status", status).
			Int("bytes", ww.BytesWritten()).Dur("dur", time.Since(start))
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			ev = ev.Str("request_id", rid)
		}
		if lvl >= LevelDebug {
			ev = ev.Str("query", r.URL.RawQuery).Str("user_agent", r.UserAgent())
		}
		ev.Msg("request")
	})
}
