package abi

import "fmt"

// Error is an error code carried by error-kind flat values.
type Error uint8

const (
	ErrActionNotSupported   Error = 0x1
	ErrExpectedNode         Error = 0x2
	ErrInvalidArgumentTypes Error = 0x3
	ErrNoSuchEntry          Error = 0x4
	ErrPathEmpty            Error = 0x5
	ErrUnknownTypeFlags     Error = 0x6
	ErrWrongType            Error = 0x7
)

var errText = map[Error]string{
	ErrActionNotSupported:   "action not supported",
	ErrExpectedNode:         "expected node",
	ErrInvalidArgumentTypes: "invalid argument types",
	ErrNoSuchEntry:          "no such entry",
	ErrPathEmpty:            "path empty",
	ErrUnknownTypeFlags:     "unknown type flags",
	ErrWrongType:            "wrong type",
}

func (e Error) Error() string {
	if s, ok := errText[e]; ok {
		return s
	}
	return fmt.Sprintf("vnodes error %d", uint8(e))
}

// Valid reports whether e is one of the defined codes.
func (e Error) Valid() bool {
	_, ok := errText[e]
	return ok
}
