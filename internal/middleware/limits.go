package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Body size limits.
const (
	KB = 1024
	MB = 1024 * KB

	// DefaultMaxBodySize caps JSON request bodies.
	DefaultMaxBodySize = 1 * MB

	// WebhookMaxBodySize caps payment gateway event payloads.
	WebhookMaxBodySize = 64 * KB

	// UploadMaxBodySize caps dish image uploads. The image itself may be
	// 5MB; the rest is multipart framing.
	UploadMaxBodySize = 6 * MB
)

// Request timeouts.
const (
	DefaultTimeout = 30 * time.Second

	// CheckoutTimeout covers a gateway round trip plus the order transaction.
	CheckoutTimeout = 45 * time.Second
)

const timeoutBody = `{"success":false,"message":"Request timeout","error":"timeout"}`

// MaxBodySize rejects requests whose declared length exceeds limit with a
// 413 and caps reads for the rest. limit defaults to DefaultMaxBodySize.
func MaxBodySize(limit ...int64) func(http.Handler) http.Handler {
	maxBytes := int64(DefaultMaxBodySize)
	if len(limit) > 0 && limit[0] > 0 {
		maxBytes = limit[0]
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				respondTooLarge(w, r)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Timeout cancels the request context after d (DefaultTimeout if omitted)
// and answers 503 unless the handler has already started its response.
// Writes made by the handler after that point are dropped.
func Timeout(d ...time.Duration) func(http.Handler) http.Handler {
	timeout := DefaultTimeout
	if len(d) > 0 && d[0] > 0 {
		timeout = d[0]
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{w: w, h: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer close(done)
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				select {
				case p := <-panicked:
					// hand the panic to Recovery on this goroutine
					panic(p)
				default:
				}
				tw.flush()
			case <-ctx.Done():
				tw.timeout()
			}
		})
	}
}

// timeoutWriter buffers headers until the first write so a timeout can
// still replace the response. After timeout or completion it is inert.
type timeoutWriter struct {
	mu          sync.Mutex
	w           http.ResponseWriter
	h           http.Header
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header { return tw.h }

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.writeHeaderLocked(code)
}

func (tw *timeoutWriter) writeHeaderLocked(code int) {
	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.wroteHeader = true
	dst := tw.w.Header()
	for k, v := range tw.h {
		dst[k] = v
	}
	tw.w.WriteHeader(code)
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	tw.writeHeaderLocked(http.StatusOK)
	return tw.w.Write(b)
}

// flush commits headers for handlers that never wrote.
func (tw *timeoutWriter) flush() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if !tw.wroteHeader && len(tw.h) > 0 {
		tw.writeHeaderLocked(http.StatusOK)
	}
}

func (tw *timeoutWriter) timeout() {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if !tw.wroteHeader {
		tw.w.Header().Set("Content-Type", "application/json")
		tw.w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = tw.w.Write([]byte(timeoutBody))
		tw.wroteHeader = true
	}
	// a partially written response is left truncated
	tw.timedOut = true
}
