package article

import "errors"

// Errors returned by Parse. Fatal errors abort construction; no partial
// Article is ever returned alongside one.
var (
	// ErrMissingSection indicates a mandatory document section is absent.
	ErrMissingSection = errors.New("mandatory section missing")

	// ErrUnknownRole indicates a contributor role outside
	// author/editor/reviewer.
	ErrUnknownRole = errors.New("unknown contributor role")
)
