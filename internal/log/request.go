package log

import (
	"time"
)

// requestTimeLayout matches JavaScript's Date.toISOString.
const requestTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// RequestLine formats one line of the request side log.
func RequestLine(t time.Time, method, uri string) string {
	return t.UTC().Format(requestTimeLayout) + " " + method + " " + uri + "\n"
}
