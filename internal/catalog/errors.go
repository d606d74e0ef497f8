package catalog

import "github.com/pkg/errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArgumentError is an ErrInvalidArgument carrying a message for the client.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
