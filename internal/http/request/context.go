package request //import "github.com/Xunop/amana-bookstore/internal/http/request"

import (
	"context"
	"net/http"
)

type ContextKey int

const (
	ClientIPContextKey ContextKey = iota
	RequestIDContextKey
)

func getContextStringValue(r *http.Request, key ContextKey) string {
	if v := r.Context().Value(key); v != nil {
		if value, valid := v.(string); valid {
			return value
		}
	}
	return ""
}

// ClientIP returns the client IP address stored in the context.
func ClientIP(r *http.Request) string {
	return getContextStringValue(r, ClientIPContextKey)
}

// RequestID returns the request identifier stored in the context.
func RequestID(r *http.Request) string {
	return getContextStringValue(r, RequestIDContextKey)
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ClientIPContextKey, ip)
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, id)
}
