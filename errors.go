package swiss

import "errors"

// ErrNotFound is returned by the optional-returning operations (Get,
// TryErase) when the key is absent. It is the single NotFound kind spec.md
// §6/§7 calls for; stdlib errors.New/errors.Is are sufficient here (see
// DESIGN.md) since no other failure mode in this package is a sentinel
// value rather than a panic or a plain bool.
var ErrNotFound = errors.New("swiss: key not found")
