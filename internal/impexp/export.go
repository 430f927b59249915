package impexp

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"pickman/inventory-index/internal/models"
)

// BuildRecords returns one record per catalog item that has something stored:
// a positive quantity or any sell price. Records follow catalog order.
func BuildRecords(items []models.CatalogItem, ledger models.Ledger) []models.ExportRecord {
	records := make([]models.ExportRecord, 0, len(ledger))
	for _, item := range items {
		rec := ledger[models.ResolveKey(item)]
		if !rec.Quantity.IsPositive() && rec.SellPrice.IsAbsent() {
			continue
		}
		records = append(records, models.ExportRecord{
			Quantity:     rec.Quantity,
			Name:         item.DisplayName(),
			SellValue:    rec.SellPrice,
			Section:      item.Section,
			CategoryName: item.CategoryName,
		})
	}
	return records
}

// Write serializes records to w in the given format.
func Write(w io.Writer, format Format, records []models.ExportRecord) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, records)
	case FormatYAML:
		return writeYAML(w, records)
	case FormatCSV:
		return writeDelimited(w, ',', records)
	case FormatTSV:
		return writeDelimited(w, '\t', records)
	case FormatXLSX:
		return writeXLSX(w, records)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// docNumber writes a decimal as a bare number in JSON and YAML documents.
type docNumber decimal.Decimal

func (n docNumber) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).String()), nil
}

func (n docNumber) MarshalYAML() (interface{}, error) {
	d := decimal.Decimal(n)
	tag := "!!float"
	if d.IsInteger() {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: d.String()}, nil
}

type documentRecord struct {
	Quantity    docNumber   `json:"QTY" yaml:"QTY"`
	Name        string      `json:"Item Name" yaml:"Item Name"`
	SellValue   interface{} `json:"Sell Value" yaml:"Sell Value"`
	Category    string      `json:"Category" yaml:"Category"`
	SubCategory string      `json:"Sub-Category" yaml:"Sub-Category"`
}

func toDocument(records []models.ExportRecord) []documentRecord {
	out := make([]documentRecord, 0, len(records))
	for _, r := range records {
		doc := documentRecord{
			Quantity:    docNumber(r.Quantity),
			Name:        r.Name,
			Category:    r.Section,
			SubCategory: r.CategoryName,
		}
		if amount, ok := r.SellValue.Amount(); ok {
			doc.SellValue = docNumber(amount)
		} else if label, ok := r.SellValue.Label(); ok {
			doc.SellValue = label
		}
		out = append(out, doc)
	}
	return out
}

func writeJSON(w io.Writer, records []models.ExportRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(records)); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, records []models.ExportRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(records)); err != nil {
		return fmt.Errorf("error encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("error encoding YAML: %w", err)
	}
	return nil
}

// tabularRow is the gocsv mapping of the export columns.
type tabularRow struct {
	Quantity    string `csv:"QTY"`
	Name        string `csv:"Item Name"`
	SellValue   string `csv:"Sell Value"`
	Category    string `csv:"Category"`
	SubCategory string `csv:"Sub-Category"`
}

func sellValueText(p models.SellPrice) string {
	if amount, ok := p.Amount(); ok {
		return amount.String()
	}
	label, _ := p.Label()
	return label
}

func toTabular(records []models.ExportRecord) []tabularRow {
	rows := make([]tabularRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, tabularRow{
			Quantity:    r.Quantity.String(),
			Name:        r.Name,
			SellValue:   sellValueText(r.SellValue),
			Category:    r.Section,
			SubCategory: r.CategoryName,
		})
	}
	return rows
}

func writeDelimited(w io.Writer, comma rune, records []models.ExportRecord) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = comma

	if err := gocsv.MarshalCSV(toTabular(records), gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing delimited data: %w", err)
	}
	return nil
}

// cellNumber keeps whole numbers as integers so spreadsheets show "3", not "3.0".
func cellNumber(d decimal.Decimal) interface{} {
	if d.IsInteger() {
		return d.IntPart()
	}
	return d.InexactFloat64()
}

func writeXLSX(w io.Writer, records []models.ExportRecord) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName(f.GetSheetName(0), XLSXSheet); err != nil {
		return fmt.Errorf("error naming worksheet: %w", err)
	}

	header := make([]interface{}, 0, len(models.ExportColumns))
	for _, c := range models.ExportColumns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(XLSXSheet, "A1", &header); err != nil {
		return fmt.Errorf("error writing header row: %w", err)
	}

	for i, r := range records {
		var sell interface{}
		if amount, ok := r.SellValue.Amount(); ok {
			sell = cellNumber(amount)
		} else if label, ok := r.SellValue.Label(); ok {
			sell = label
		}
		row := []interface{}{cellNumber(r.Quantity), r.Name, sell, r.Section, r.CategoryName}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(XLSXSheet, cell, &row); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}
