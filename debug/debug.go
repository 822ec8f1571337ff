package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Dispatch bool
	Refcount bool
	Resolve  bool
	RPC      bool
	Load     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Dispatch = boolEnv("VN_DEBUG_DISPATCH")
	d.Refcount = boolEnv("VN_DEBUG_REFCOUNT")
	d.Resolve = boolEnv("VN_DEBUG_RESOLVE")
	d.RPC = boolEnv("VN_DEBUG_RPC")
	d.Load = boolEnv("VN_DEBUG_LOAD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Dispatch() bool {
	return d.Dispatch
}
func Refcount() bool {
	return d.Refcount
}
func Resolve() bool {
	return d.Resolve
}
func RPC() bool {
	return d.RPC
}
func Load() bool {
	return d.Load
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
