package service

import "errors"

var ErrNotFound = errors.New("not found")

var (
	ErrAuth       = errors.New("auth")
	ErrValidation = errors.New("validation")
)
