package worker

import (
	"io"
	"sync"

	"github.com/Xunop/amana-bookstore/internal/log"
	"github.com/Xunop/amana-bookstore/internal/model"
	"go.uber.org/zap"
)

// RequestLogPool appends request lines to the side log off the request path.
// A single worker owns the writer so lines keep their arrival order.
type RequestLogPool struct {
	queue  chan model.RequestLogEntry
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewRequestLogPool(w io.Writer, size int) *RequestLogPool {
	pool := &RequestLogPool{
		queue: make(chan model.RequestLogEntry, size),
	}

	worker := &RequestLogWorker{writer: w}
	pool.wg.Add(1)
	go func() {
		defer pool.wg.Done()
		worker.Run(pool.queue)
	}()

	return pool
}

// Push implements WorkPool. It never blocks: when the queue is full the
// entry is dropped and a warning is logged.
func (p *RequestLogPool) Push(entry model.RequestLogEntry) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}

	select {
	case p.queue <- entry:
	default:
		log.Warn("Request log queue is full, dropping entry",
			zap.String("method", entry.Method),
			zap.String("uri", entry.URI))
	}
}

// Close stops accepting entries and waits for the queued ones to be written.
func (p *RequestLogPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

var _ Worker = (*RequestLogWorker)(nil)

type RequestLogWorker struct {
	writer io.Writer
}

// Run writes every entry of c. Write failures are reported and never retried.
func (w *RequestLogWorker) Run(c <-chan model.RequestLogEntry) {
	log.Debug("RequestLogWorker is running")

	for entry := range c {
		line := log.RequestLine(entry.Time, entry.Method, entry.URI)
		if _, err := io.WriteString(w.writer, line); err != nil {
			log.Error("Failed to write log", zap.Error(err))
		}
	}
}
