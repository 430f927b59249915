// Package impexp exchanges the inventory ledger with flat record files:
// JSON and YAML documents, CSV and tab-delimited text, and XLSX workbooks.
package impexp

import (
	"path/filepath"
	"strings"

	"pickman/inventory-index/internal/fileutils"
	"pickman/inventory-index/internal/parsererror"
)

// Format identifies a file serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "txt"
	FormatXLSX Format = "xlsx"
)

// XLSXSheet is the worksheet title written on export.
const XLSXSheet = "Index"

var extensions = map[string]Format{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".csv":  FormatCSV,
	".txt":  FormatTSV,
	".tsv":  FormatTSV,
	".xlsx": FormatXLSX,
}

// SupportedExtensions lists the recognized file extensions.
func SupportedExtensions() []string {
	return []string{".json", ".yaml", ".yml", ".csv", ".txt", ".tsv", ".xlsx"}
}

// ParseFormat resolves a format name such as "json" or "tsv".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if f, ok := extensions["."+name]; ok {
		return f, nil
	}
	return "", &parsererror.UnsupportedFormatError{Extension: name, Supported: SupportedExtensions()}
}

// FormatFromPath resolves the format of path from its extension, ignoring case.
func FormatFromPath(path string) (Format, error) {
	ext := fileutils.Extension(path)
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", &parsererror.UnsupportedFormatError{
		FilePath:  path,
		Extension: ext,
		Supported: SupportedExtensions(),
	}
}

// Extension returns the canonical file extension of f.
func (f Format) Extension() string {
	return "." + string(f)
}

// exportPath appends the default extension when path has none.
func exportPath(path string, def Format) string {
	if filepath.Ext(path) == "" {
		return path + def.Extension()
	}
	return path
}
