package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RequestObserver interface {
	Observe(route, method string, status int, elapsed time.Duration)
}

// MetricsMiddleware records every request under its route pattern, not the raw path.
func MetricsMiddleware(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			observer.Observe(route, r.Method, status, time.Since(start))
		})
	}
}
