package model

import "errors"

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("not found")
	ErrEditFailed   = errors.New("edit failed")
	ErrClearFailed  = errors.New("clear failed")
	ErrParse        = errors.New("parse failure")

	ErrEmptyCart       = errors.New("empty cart")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrCodeExhausted   = errors.New("sale code space exhausted")
)
