package handler

import "errors"

const (
	SERVER_ERROR_CODE    = 15
	SERVER_ERROR_MESSAGE = "SERVER_ERROR"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidPID    = errors.New("invalid pid")
)
