package core

import "errors"

var (
	ErrNotFound      = errors.New("record is not found")
	ErrBadQuery      = errors.New("query must be non-empty")
	ErrNilDependency = errors.New("lookup service: nil dependency")
)
