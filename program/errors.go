package program

import "errors"

// Failure kinds surfaced by program operations. Callers match them
// with errors.Is; the wrapped message carries the diagnostic detail
// (native info logs, offending names, source listings).
var (
	// ErrInvalidShader: an uninitialized or unknown-typed shader was
	// passed to Attach/Detach.
	ErrInvalidShader = errors.New("invalid shader")
	// ErrProgramCreation: the native program allocation failed.
	ErrProgramCreation = errors.New("could not create shader program")
	// ErrNotInitialized: the operation needs a native program handle
	// and none exists.
	ErrNotInitialized = errors.New("program not initialized")
	// ErrNotAttached: Detach was called with a shader that is not the
	// one currently attached for its type.
	ErrNotAttached = errors.New("shader not attached to this program")
	// ErrLink: the native link step failed; carries the info log.
	ErrLink = errors.New("program link failed")
	// ErrCompile: a shader's own compile step failed; carries the
	// shader log and a line-numbered source listing.
	ErrCompile = errors.New("shader compilation failed")
	// ErrEmptyArray: a client-side attribute upload had no elements.
	ErrEmptyArray = errors.New("empty attribute array")
	// ErrNameNotFound: the linked program has no location for the
	// requested attribute or uniform name.
	ErrNameNotFound = errors.New("name not found in current shader program")
)
