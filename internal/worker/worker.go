package worker

import (
	"github.com/Xunop/amana-bookstore/internal/model"
)

type Worker interface {
	Run(c <-chan model.RequestLogEntry)
}
