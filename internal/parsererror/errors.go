// Package parsererror defines the typed errors returned when reading files or
// remote data fails in a way the caller must report.
package parsererror

import "fmt"

// InvalidFormatError is returned when a file has the right extension but the
// wrong shape, e.g. an import document whose top level is not a list.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	msg := fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned for a file extension that neither
// import nor export understands.
type UnsupportedFormatError struct {
	FilePath  string
	Extension string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type '%s' for '%s' (supported: %v)",
		e.Extension, e.FilePath, e.Supported)
}

// FetchError wraps a failure to obtain data from the pricing service.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error fetching %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
