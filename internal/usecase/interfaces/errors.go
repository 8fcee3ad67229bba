package interfaces

import "errors"

// Repository-level sentinels shared by every store implementation.
var (
	// ErrAlreadyExists is returned by conditional inserts when the key is taken.
	ErrAlreadyExists = errors.New("item already exists")
)
