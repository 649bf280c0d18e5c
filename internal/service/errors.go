package service

const (
	ErrInternalMessage      = "internal error"
	ErrNotAuthorizedMessage = "not authorized"
	ErrInvalidTextMessage   = "invalid text length"
	ErrInvalidQueryMessage  = "invalid query"
)
