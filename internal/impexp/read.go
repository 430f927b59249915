package impexp

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"pickman/inventory-index/internal/parsererror"
)

// RawRecord is one imported row before it is matched against the catalog.
// Quantity and SellValue keep the loosely typed value found in the file.
type RawRecord struct {
	Name      string
	Quantity  interface{}
	SellValue interface{}
}

// Field-name variants accepted on import, in precedence order. Document keys
// must match exactly; tabular headers are compared in lower case.
var (
	nameAliases     = []string{"Item Name", "item_name", "name"}
	quantityAliases = []string{"QTY", "qty", "quantity"}
	sellAliases     = []string{"Sell Value", "Sell Price", "sell_price"}
)

// Read decodes every record of r. Only structural problems are errors: a
// document whose top level is not a list, a malformed delimited file, or an
// unreadable workbook. Entries that are not objects are dropped.
func Read(r io.Reader, format Format) ([]RawRecord, error) {
	switch format {
	case FormatJSON:
		return readJSON(r)
	case FormatYAML:
		return readYAML(r)
	case FormatCSV:
		return readDelimited(r, ',')
	case FormatTSV:
		return readDelimited(r, '\t')
	case FormatXLSX:
		return readXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported import format %q", format)
	}
}

func notAList(format Format) error {
	return &parsererror.InvalidFormatError{
		ExpectedFormat: string(format),
		Msg:            "document must be a list of objects",
	}
}

func readJSON(r io.Reader) ([]RawRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: string(FormatJSON),
			Msg:            "malformed JSON",
			Err:            err,
		}
	}
	list, ok := doc.([]interface{})
	if !ok {
		return nil, notAList(FormatJSON)
	}
	return documentRecords(list), nil
}

func readYAML(r io.Reader) ([]RawRecord, error) {
	var doc interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: string(FormatYAML),
			Msg:            "malformed YAML",
			Err:            err,
		}
	}
	list, ok := doc.([]interface{})
	if !ok {
		return nil, notAList(FormatYAML)
	}
	return documentRecords(list), nil
}

func documentRecords(list []interface{}) []RawRecord {
	records := make([]RawRecord, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		records = append(records, RawRecord{
			Name:      nameText(firstTruthy(obj, nameAliases)),
			Quantity:  firstPresent(obj, quantityAliases),
			SellValue: firstPresent(obj, sellAliases),
		})
	}
	return records
}

// firstTruthy returns the first alias whose value is neither absent nor empty.
func firstTruthy(obj map[string]interface{}, aliases []string) interface{} {
	for _, a := range aliases {
		v, ok := obj[a]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && s == "" {
			continue
		}
		return v
	}
	return nil
}

// firstPresent returns the value of the first alias present as a key, even if
// that value is null.
func firstPresent(obj map[string]interface{}, aliases []string) interface{} {
	for _, a := range aliases {
		if v, ok := obj[a]; ok {
			return v
		}
	}
	return nil
}

func nameText(v interface{}) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	default:
		return fmt.Sprint(n)
	}
}

func readDelimited(r io.Reader, comma rune) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: "delimited text",
			Msg:            "malformed rows",
			Err:            err,
		}
	}
	return tabularRecords(rows), nil
}

func readXLSX(r io.Reader) ([]RawRecord, error) {
	// excelize needs random access to the zip container.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: string(FormatXLSX),
			Msg:            "unreadable workbook",
			Err:            err,
		}
	}
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: string(FormatXLSX),
			Msg:            fmt.Sprintf("unreadable worksheet %q", sheet),
			Err:            err,
		}
	}
	return tabularRecords(rows), nil
}

// tabularRecords maps the header row case-insensitively and turns every
// following non-empty row into a record. Empty cells count as absent.
func tabularRecords(rows [][]string) []RawRecord {
	if len(rows) == 0 {
		return nil
	}

	header := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if key == "" {
			continue
		}
		if _, dup := header[key]; !dup {
			header[key] = i
		}
	}

	column := func(row []string, aliases []string) interface{} {
		for _, a := range aliases {
			idx, ok := header[strings.ToLower(a)]
			if !ok || idx >= len(row) {
				continue
			}
			if row[idx] == "" {
				return nil
			}
			return row[idx]
		}
		return nil
	}

	records := make([]RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		records = append(records, RawRecord{
			Name:      nameText(column(row, nameAliases)),
			Quantity:  column(row, quantityAliases),
			SellValue: column(row, sellAliases),
		})
	}
	return records
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
