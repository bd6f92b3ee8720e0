package application

import "errors"

var ErrNoSymbols = errors.New("no symbols to fetch")
var ErrRunLocked = errors.New("another run holds the lock")
