package middleware // import "github.com/Xunop/amana-bookstore/internal/middleware"

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Xunop/amana-bookstore/internal/http/request"
	"github.com/Xunop/amana-bookstore/internal/http/response"
	"github.com/Xunop/amana-bookstore/internal/log"
	"github.com/Xunop/amana-bookstore/internal/model"
	"github.com/Xunop/amana-bookstore/internal/worker"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

type Middleware struct {
	pool        worker.WorkPool
	maxBodySize int64
	now         func() time.Time
}

// NewMiddleware returns the middlewares shared by every route. Request lines
// go to pool, bodies larger than maxBodySize are refused (0 disables it).
func NewMiddleware(pool worker.WorkPool, maxBodySize int64) *Middleware {
	return &Middleware{pool: pool, maxBodySize: maxBodySize, now: time.Now}
}

// Chain wraps h so that the first middleware is the outermost one.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func (m *Middleware) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, X-Request-Id")
		w.Header().Set("Access-Control-Expose-Headers", requestIDHeader)
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Max-Age", "7200")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequestID reuses the caller's X-Request-Id or generates one.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(request.WithRequestID(r.Context(), requestID)))
	})
}

func (m *Middleware) ClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := request.WithClientIP(r.Context(), request.FindClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLog hands one entry per request to the side log pool. The request
// never waits on the write.
func (m *Middleware) RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.pool.Push(model.RequestLogEntry{
			Time:   m.now(),
			Method: r.Method,
			URI:    r.RequestURI,
		})
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)

		t1 := time.Now()
		defer func() {
			log.Debug("Incoming request",
				zap.String("request_id", request.RequestID(r)),
				zap.String("method", r.Method),
				zap.String("uri", r.RequestURI),
				zap.String("proto", r.Proto),
				zap.String("client_ip", request.ClientIP(r)),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(t1)))
		}()

		next.ServeHTTP(rec, r)
	})
}

func (m *Middleware) Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Error("Panic recovered",
					zap.String("request_id", request.RequestID(r)),
					zap.Any("error", err),
					zap.ByteString("stack", debug.Stack()))

				if !rec.wroteHeader {
					response.ServerError(rec, r, panicError{value: err})
				}
			}
		}()
		next.ServeHTTP(rec, r)
	})
}

// LimitBody caps the request body. Handlers see a *http.MaxBytesError when
// reading past the limit.
func (m *Middleware) LimitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.maxBodySize > 0 && r.Body != nil {
			if r.ContentLength > m.maxBodySize {
				response.RequestEntityTooLarge(w, r)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, m.maxBodySize)
		}
		next.ServeHTTP(w, r)
	})
}
