package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InvalidFormatError
		expected string
	}{
		{
			name: "without cause",
			err: &InvalidFormatError{
				FilePath:       "index.json",
				ExpectedFormat: "list of objects",
				Msg:            "top level is an object",
			},
			expected: "invalid format in file 'index.json': top level is an object. Expected: list of objects",
		},
		{
			name: "with cause",
			err: &InvalidFormatError{
				FilePath:       "index.xlsx",
				ExpectedFormat: "xlsx workbook",
				Msg:            "cannot open workbook",
				Err:            errors.New("zip: not a valid zip file"),
			},
			expected: "invalid format in file 'index.xlsx': cannot open workbook. Expected: xlsx workbook: zip: not a valid zip file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUnsupportedFormatError(t *testing.T) {
	err := &UnsupportedFormatError{FilePath: "index.pdf", Extension: ".pdf", Supported: []string{".json", ".xlsx"}}
	assert.Equal(t, "unsupported file type '.pdf' for 'index.pdf' (supported: [.json .xlsx])", err.Error())

	var target *UnsupportedFormatError
	assert.True(t, errors.As(error(err), &target))
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := &FetchError{Endpoint: "marketplace_averages_all", Err: cause}

	assert.Equal(t, "error fetching marketplace_averages_all: timeout", err.Error())
	assert.True(t, errors.Is(err, cause))
}
