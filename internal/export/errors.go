package export

import "fmt"

// UnavailableError indicates the raster rendering backend cannot be used
// (for example the bundled font failed to load). Callers degrade by skipping
// the raster artifact; the standalone HTML export never depends on it.
type UnavailableError struct {
	Reason string
	Err    error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("raster export unavailable: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("raster export unavailable: %s", e.Reason)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
