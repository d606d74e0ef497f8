package response // import "github.com/Xunop/amana-bookstore/internal/http/response"

import (
	"encoding/json"
	"net/http"

	"github.com/Xunop/amana-bookstore/internal/http/request"
	"github.com/Xunop/amana-bookstore/internal/log"
	"go.uber.org/zap"
)

const contentTypeHeader = `application/json`

type successBody struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON sends body as is with a 200 status code.
func JSON(w http.ResponseWriter, r *http.Request, body interface{}) {
	builder := New(w, r)
	builder.WithHeader("Content-Type", contentTypeHeader)
	builder.WithBody(toJSON(body))
	builder.Write()
}

// OK wraps data in a success envelope with a 200 status code.
func OK(w http.ResponseWriter, r *http.Request, data interface{}) {
	builder := New(w, r)
	builder.WithHeader("Content-Type", contentTypeHeader)
	builder.WithBody(toJSON(successBody{Success: true, Data: data}))
	builder.Write()
}

// Created sends a created response to the client.
func Created(w http.ResponseWriter, r *http.Request, data interface{}) {
	builder := New(w, r)
	builder.WithStatus(http.StatusCreated)
	builder.WithHeader("Content-Type", contentTypeHeader)
	builder.WithBody(toJSON(successBody{Success: true, Data: data}))
	builder.Write()
}

// ServerError sends an internal error to the client. The cause is only logged.
func ServerError(w http.ResponseWriter, r *http.Request, err error) {
	log.Error(http.StatusText(http.StatusInternalServerError),
		append(requestFields(r, http.StatusInternalServerError), zap.Error(err))...,
	)

	writeError(w, r, http.StatusInternalServerError, "Internal server error")
}

// BadRequest sends a bad request error to the client.
func BadRequest(w http.ResponseWriter, r *http.Request, err error) {
	log.Warn(http.StatusText(http.StatusBadRequest),
		append(requestFields(r, http.StatusBadRequest), zap.Any("error", err))...,
	)

	writeError(w, r, http.StatusBadRequest, err.Error())
}

// NotFound sends a not found error with the given message to the client.
func NotFound(w http.ResponseWriter, r *http.Request, message string) {
	log.Warn(http.StatusText(http.StatusNotFound), requestFields(r, http.StatusNotFound)...)

	writeError(w, r, http.StatusNotFound, message)
}

// MethodNotAllowed sends a method not allowed error to the client.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	log.Warn(http.StatusText(http.StatusMethodNotAllowed), requestFields(r, http.StatusMethodNotAllowed)...)

	writeError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}

// RequestEntityTooLarge sends a payload too large error to the client.
func RequestEntityTooLarge(w http.ResponseWriter, r *http.Request) {
	log.Warn(http.StatusText(http.StatusRequestEntityTooLarge), requestFields(r, http.StatusRequestEntityTooLarge)...)

	writeError(w, r, http.StatusRequestEntityTooLarge, "Request body too large")
}

// TooManyRequests sends a rate limit error to the client.
func TooManyRequests(w http.ResponseWriter, r *http.Request) {
	log.Warn(http.StatusText(http.StatusTooManyRequests), requestFields(r, http.StatusTooManyRequests)...)

	builder := New(w, r)
	builder.WithStatus(http.StatusTooManyRequests)
	builder.WithHeader("Content-Type", contentTypeHeader)
	builder.WithHeader("Retry-After", "1")
	builder.WithBody(toJSON(errorBody{Message: "Too many requests"}))
	builder.Write()
}

// Text sends a plain text body with a 200 status code.
func Text(w http.ResponseWriter, r *http.Request, body string) {
	builder := New(w, r)
	builder.WithHeader("Content-Type", "text/plain; charset=utf-8")
	builder.WithBody([]byte(body))
	builder.Write()
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	builder := New(w, r)
	builder.WithStatus(status)
	builder.WithHeader("Content-Type", contentTypeHeader)
	builder.WithBody(toJSON(errorBody{Message: message}))
	builder.Write()
}

func requestFields(r *http.Request, status int) []zap.Field {
	clientIP := request.ClientIP(r)
	if clientIP == "" {
		clientIP = request.FindClientIP(r)
	}
	return []zap.Field{
		zap.String("client_ip", clientIP),
		zap.String("request_id", request.RequestID(r)),
		zap.String("request.method", r.Method),
		zap.String("request.uri", r.RequestURI),
		zap.String("request.user_agent", r.UserAgent()),
		zap.Int("response.status_code", status),
	}
}

func toJSON(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error("Unable to marshal JSON response", zap.Any("error", err))
		return []byte("")
	}

	return b
}
