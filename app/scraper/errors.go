package scraper

import (
	"errors"
	"fmt"
)

// ErrNoRecords is returned when every configured source was tried and not
// a single record could be acquired.
var ErrNoRecords = errors.New("no records acquired from any source")

var errEmptyBody = errors.New("empty response body")

// FetchError is a network-layer failure: retries were exhausted or the
// source answered with an unusable status.
type FetchError struct {
	Source     string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s (%s): %v", e.Source, e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s (%s): HTTP %d", e.Source, e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
