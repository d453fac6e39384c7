package event

import "errors"

// ErrNotCallable is the panic value raised when a dispatch reaches a listener
// without a callback. Only the default, lenient Register lets one in.
var ErrNotCallable = errors.New("event: listener is not callable")
