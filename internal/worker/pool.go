package worker // import "github.com/Xunop/amana-bookstore/internal/worker"

import (
	"github.com/Xunop/amana-bookstore/internal/model"
)

type WorkPool interface {
	Push(entry model.RequestLogEntry)
}
