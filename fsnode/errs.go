package fsnode

import "errors"

var ErrNotDir = errors.New("not a directory")
