package intern

import "errors"

var (
	ErrInvalidChar = errors.New("invalid identifier character")
	ErrTooLong     = errors.New("identifier too long")
)
