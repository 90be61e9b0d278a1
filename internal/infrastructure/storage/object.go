package storage

import (
	"errors"
	"io"
)

// ErrObjectNotFound is returned by Get when no object has the key.
var ErrObjectNotFound = errors.New("object not found")

// Object is a stored blob opened for reading. Callers must close Body.
type Object struct {
	Key         string
	Body        io.ReadCloser
	ContentType string
	Size        int64
}
