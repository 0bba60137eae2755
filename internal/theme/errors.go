package theme

import "errors"

// Sentinel errors for the theme package.
var (
	// ErrUnknownScheme is returned when a scheme name matches no
	// builtin and no loadable file.
	ErrUnknownScheme = errors.New("unknown color scheme")

	// ErrInvalidScheme is returned when scheme data is malformed.
	ErrInvalidScheme = errors.New("invalid color scheme")
)
