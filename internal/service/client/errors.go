package client

import "errors"

var (
	ErrNotFound       = errors.New("client not found")
	ErrInvalidRequest = errors.New("invalid client request")
)
