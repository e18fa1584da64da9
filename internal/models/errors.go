package models

import "errors"

var (
	// ErrNotFound is returned by a PersistentStore when the key holds no value.
	ErrNotFound = errors.New("key not found")
	// ErrStoreRead marks a missing, corrupt or unparseable persisted value.
	ErrStoreRead = errors.New("store read failed")
	// ErrStoreWrite marks a failed persistence attempt.
	ErrStoreWrite = errors.New("store write failed")
)
