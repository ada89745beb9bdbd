package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myreader-engine/pkg/ctxutil"
)

// Tripper is a function that wraps an http.RoundTripper.
type Tripper func(http.RoundTripper) http.RoundTripper

// Chain combines multiple trippers into a single Tripper.
// Trippers are applied in the order given: Chain(t1, t2)(rt) results in
// t1(t2(rt)), so t1 executes first (outermost).
func Chain(ts ...Tripper) Tripper {
	return func(final http.RoundTripper) http.RoundTripper {
		for i := len(ts) - 1; i >= 0; i-- {
			final = ts[i](final)
		}
		return final
	}
}

type tripperFunc func(*http.Request) (*http.Response, error)

func (f tripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// RequestID stamps every outgoing request with an X-Request-Id header,
// reusing an id already carried by the context.
func RequestID() Tripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return tripperFunc(func(r *http.Request) (*http.Response, error) {
			id := ctxutil.RequestIDFromCtx(r.Context())
			if id == "" {
				id = uuid.New().String()
			}
			// Round trippers must not mutate the caller's request.
			r = r.Clone(r.Context())
			r.Header.Set("X-Request-Id", id)
			return next.RoundTrip(r)
		})
	}
}

// Logger logs each outgoing request with method, path, status code,
// duration, and request id.
func Logger(logger *slog.Logger) Tripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return tripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)
			duration := time.Since(start)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("duration", duration),
			}
			if id := r.Header.Get("X-Request-Id"); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}

			level := slog.LevelInfo
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				level = slog.LevelError
			} else {
				attrs = append(attrs, slog.Int("status", resp.StatusCode))
				if resp.StatusCode >= 500 {
					level = slog.LevelError
				}
			}
			logger.LogAttrs(r.Context(), level, "api.request", attrs...)
			return resp, err
		})
	}
}
