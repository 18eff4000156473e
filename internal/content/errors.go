package content

import (
	"errors"
	"fmt"
)

var (
	// ErrPreviewParse marks a stored preview override that is not a valid
	// content document.
	ErrPreviewParse = errors.New("preview content is malformed")

	// ErrContentFetch marks any failure to obtain published content, whether
	// the request failed, returned a non-success status or carried an
	// unparsable body.
	ErrContentFetch = errors.New("content could not be loaded")
)

// FetchError describes a failed content request.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("content request to %s failed with status %d", e.Source, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("content request to %s: %v", e.Source, e.Err)
	default:
		return fmt.Sprintf("content request to %s failed", e.Source)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports FetchError as an ErrContentFetch.
func (e *FetchError) Is(target error) bool { return target == ErrContentFetch }
