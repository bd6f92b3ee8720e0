package bootstrap

import "errors"

var (
	ErrUnknownProvider    = errors.New("unknown PROVIDER")
	ErrUnknownLockBackend = errors.New("unknown LOCK_BACKEND")
)
