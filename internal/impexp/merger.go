package impexp

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"pickman/inventory-index/internal/catalog"
	"pickman/inventory-index/internal/fileutils"
	"pickman/inventory-index/internal/logging"
	"pickman/inventory-index/internal/models"
	"pickman/inventory-index/internal/numparse"
	"pickman/inventory-index/internal/parsererror"
	"pickman/inventory-index/internal/store"
)

// ImportResult summarizes an import.
type ImportResult struct {
	// Imported counts records merged into the ledger.
	Imported int
	// Skipped counts records without a name.
	Skipped int
	// Unmatched lists names not found in the catalog, sorted and unique.
	Unmatched []string
}

// Merger moves records between the inventory store and external files.
type Merger struct {
	store         *store.InventoryStore
	logger        logging.Logger
	defaultFormat Format
}

// NewMerger creates a Merger. Exports to a path without an extension use
// defaultFormat, or JSON when it is empty.
func NewMerger(s *store.InventoryStore, logger logging.Logger, defaultFormat Format) *Merger {
	if defaultFormat == "" {
		defaultFormat = FormatJSON
	}
	return &Merger{
		store:         s,
		logger:        logger,
		defaultFormat: defaultFormat,
	}
}

// Export writes the records of every stored item of idx to path and returns
// the path actually written.
func (m *Merger) Export(path string, idx *catalog.Index) (string, error) {
	path = exportPath(path, m.defaultFormat)
	format, err := FormatFromPath(path)
	if err != nil {
		return "", err
	}

	records := BuildRecords(idx.Items(), m.store.Snapshot())

	var buf bytes.Buffer
	if err := Write(&buf, format, records); err != nil {
		return "", err
	}
	if err := fileutils.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("error writing export file: %w", err)
	}

	m.logger.Info("Exported index",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldFormat, string(format)),
		logging.F(logging.FieldCount, len(records)))
	return path, nil
}

// Import reads path and merges its records into the ledger.
func (m *Merger) Import(path string, idx *catalog.Index) (ImportResult, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return ImportResult{}, err
	}

	if !fileutils.FileExists(path) {
		return ImportResult{}, fmt.Errorf("import file not found: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("error opening import file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			m.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	records, err := Read(file, format)
	if err != nil {
		var invalid *parsererror.InvalidFormatError
		if errors.As(err, &invalid) {
			invalid.FilePath = path
		}
		m.logger.WithError(err).Error("Import failed", logging.F(logging.FieldFile, path))
		return ImportResult{}, err
	}

	m.logger.Debug("Read import file",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldFormat, string(format)),
		logging.F(logging.FieldCount, len(records)))

	return m.ImportRecords(records, idx)
}

// ImportRecords matches records to catalog items by exact name and merges
// quantity and sell value into their ledger records. Unmatched names are
// reported, never fatal. The ledger is persisted once at the end.
func (m *Merger) ImportRecords(records []RawRecord, idx *catalog.Index) (ImportResult, error) {
	byName := idx.ByName()
	unmatched := make(map[string]struct{})
	var result ImportResult

	err := m.store.Update(func(ledger models.Ledger) error {
		for _, rec := range records {
			if rec.Name == "" {
				result.Skipped++
				continue
			}
			item, ok := byName[rec.Name]
			if !ok {
				unmatched[rec.Name] = struct{}{}
				continue
			}

			key := models.ResolveKey(item)
			entry := ledger[key]
			entry.Quantity = numparse.ValueOrZero(rec.Quantity)
			entry.SellPrice = store.SellPriceFromValue(rec.SellValue)
			ledger.Put(key, entry)
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	result.Unmatched = make([]string, 0, len(unmatched))
	for name := range unmatched {
		result.Unmatched = append(result.Unmatched, name)
	}
	sort.Strings(result.Unmatched)

	m.logger.Info("Imported index",
		logging.F(logging.FieldCount, result.Imported),
		logging.F(logging.FieldSkipped, len(result.Unmatched)))
	return result, nil
}
