package router

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// EnforceJSONHandler rejects request bodies that do not declare JSON.
func EnforceJSONHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		if r.ContentLength > 0 && contentType != "" &&
			!strings.HasPrefix(contentType, "application/json") {
			http.Error(w, "Content-Type header must be application/json",
				http.StatusUnsupportedMediaType)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (api *API) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				api.log.Error("panic recovered", zap.Any("panic", err),
					zap.String("request_url", r.URL.String()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RealIP rewrites RemoteAddr from the usual proxy headers so request logs
// and rate limiting see the client address.
func RealIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := r.Header.Get("X-Real-IP"); ip != "" {
			r.RemoteAddr = ip
		} else if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			r.RemoteAddr = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}
		next.ServeHTTP(w, r)
	})
}

// Heartbeat answers liveness probes on the given endpoint before the rest
// of the chain runs.
func Heartbeat(endpoint string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if (r.Method == http.MethodGet || r.Method == http.MethodHead) &&
				strings.EqualFold(r.URL.Path, "/"+endpoint) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func Logger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("url", r.URL.String()),
				zap.String("remote_addr", r.RemoteAddr))
		})
	}
}

// Labels tags every response with common security and identification
// headers.
func Labels(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "deny")
		w.Header().Set("Server", "gridroute")
		next.ServeHTTP(w, r)
	})
}

// Limit applies a per-client token bucket: 10 req/s with bursts of 20.
func Limit(next http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		mu.Lock()
		limiter, ok := limiters[host]
		if !ok {
			limiter = rate.NewLimiter(10, 20)
			limiters[host] = limiter
		}
		mu.Unlock()
		if !limiter.Allow() {
			http.Error(w, fmt.Sprintf("rate limit exceeded for %s", host),
				http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
