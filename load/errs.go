package load

import "errors"

var (
	ErrNotMapping = errors.New("document is not a mapping")
	ErrPatch      = errors.New("patch failed")
)
