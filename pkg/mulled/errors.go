package mulled

import (
	"errors"
)

var (
	// ErrBadFormat is returned when a specification string lacks the
	// required <tool==version> separator structure.
	ErrBadFormat = errors.New("bad specification format")

	// ErrBadVersion is returned when the version portion of a specification
	// is not a valid PEP 440 version string.
	ErrBadVersion = errors.New("bad version")
)
