package importer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickman/inventory-index/cmd/importer"
	"pickman/inventory-index/internal/impexp"
)

func TestImportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "import <file>", importer.Cmd.Use)
	assert.Contains(t, importer.Cmd.Long, "exact name")
	assert.Contains(t, importer.Cmd.Long, ".csv")
	assert.NotNil(t, importer.Cmd.RunE)
	assert.Error(t, importer.Cmd.Args(importer.Cmd, nil))
}

func TestPrintResult(t *testing.T) {
	tests := []struct {
		name   string
		result impexp.ImportResult
		want   string
	}{
		{
			name:   "all matched",
			result: impexp.ImportResult{Imported: 3},
			want:   "Imported 3 items\n",
		},
		{
			name:   "skipped and unmatched",
			result: impexp.ImportResult{Imported: 1, Skipped: 2, Unmatched: []string{"Alpha", "Beta"}},
			want:   "Imported 1 items\nSkipped 2 records without a name\nNot in the market catalog: Alpha, Beta\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, importer.PrintResult(&buf, tt.result))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
