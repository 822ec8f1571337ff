package abi

import "strconv"

// Op is the operation tag passed to a node's dispatch function.
type Op uint8

const (
	Call  Op = 0x0
	Get   Op = 0x1
	Set   Op = 0x2
	List  Op = 0x3
	Clone Op = 0x4
	Drop  Op = 0x5
)

func (o Op) String() string {
	switch o {
	case Call:
		return "call"
	case Get:
		return "get"
	case Set:
		return "set"
	case List:
		return "list"
	case Clone:
		return "clone"
	case Drop:
		return "drop"
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}
