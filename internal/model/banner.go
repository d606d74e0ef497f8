package model //import "github.com/Xunop/amana-bookstore/internal/model"

type Banner struct {
	Message string   `json:"message"`
	Routes  []string `json:"routes"`
}
