package manifest

import "fmt"

// NotFoundError indicates a manifest file does not exist. Callers treat it
// as a recoverable "absent" state during discovery.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("manifest not found at %q", e.Path)
}

// ParseError indicates a manifest file exists but could not be parsed.
// Unlike the config reader there is no fallback format: this is fatal.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse manifest at %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
