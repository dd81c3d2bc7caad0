package roomboard

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the downloaded payload is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// FetchError represents a failed download of the source workbook.
type FetchError struct {
	URL string
	// Status is the HTTP status code, or 0 for transport failures.
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError.
func NewFetchError(url string, status int, err error) *FetchError {
	return &FetchError{
		URL:    url,
		Status: status,
		Err:    err,
	}
}

// MalformedSourceError represents a workbook that does not have the expected layout.
type MalformedSourceError struct {
	SheetName string
	Err       error
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed source in sheet %q: %v", e.SheetName, e.Err)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}

// NewMalformedSourceError creates a new MalformedSourceError.
func NewMalformedSourceError(sheetName string, err error) *MalformedSourceError {
	return &MalformedSourceError{
		SheetName: sheetName,
		Err:       err,
	}
}

// WriteError represents a failure to write the report.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError.
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{
		Path: path,
		Err:  err,
	}
}
