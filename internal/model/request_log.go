package model //import "github.com/Xunop/amana-bookstore/internal/model"

import "time"

// RequestLogEntry is one line of the request side log.
type RequestLogEntry struct {
	Time   time.Time
	Method string
	URI    string
}
