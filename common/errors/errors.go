package errors

import "errors"

var (
	ErrSchemaIsNil    = errors.New("schema is nil")
	ErrSchemaNotMatch = errors.New("schema not match")
	ErrColumnNotExist = errors.New("column not exist")
	ErrColumnNotBound = errors.New("column not bound")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrInvalidPath    = errors.New("invalid path")
	ErrNoEndpoint     = errors.New("no endpoint is specified")
)
