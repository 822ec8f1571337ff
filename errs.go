package vnodes

import "errors"

var ErrClosed = errors.New("context closed")
