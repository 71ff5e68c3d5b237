package storage

import "errors"

var (
	// ErrIO marks a save or ledger file that could not be read or written.
	ErrIO = errors.New("storage i/o failure")
	// ErrMalformedSave marks a save file that is truncated or structurally invalid.
	ErrMalformedSave = errors.New("malformed save data")
	// ErrMalformedScore marks a ledger line that is not an integer.
	ErrMalformedScore = errors.New("malformed score entry")
)
