package rpc

import (
	"errors"
	"fmt"

	"github.com/signadot/vnodes/abi"
	"go.lsp.dev/jsonrpc2"
)

// codeBase is the JSON-RPC error code of abi error 0; abi error n maps to
// codeBase - n.
const codeBase = -32000

func toRPCError(err error) error {
	if err == nil {
		return nil
	}
	var code abi.Error
	if errors.As(err, &code) {
		return jsonrpc2.NewError(jsonrpc2.Code(codeBase-int32(code)), err.Error())
	}
	return jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error())
}

// FromRPCError recovers the abi.Error carried by a JSON-RPC error, so that
// errors.Is works on client side.
func FromRPCError(err error) error {
	var rerr *jsonrpc2.Error
	if !errors.As(err, &rerr) {
		return err
	}
	n := codeBase - int32(rerr.Code)
	if n <= 0 || n > 0xff || !abi.Error(n).Valid() {
		return err
	}
	code := abi.Error(n)
	return fmt.Errorf("%w: %s", code, rerr.Message)
}
