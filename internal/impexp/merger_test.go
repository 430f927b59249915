package impexp

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickman/inventory-index/internal/catalog"
	"pickman/inventory-index/internal/logging"
	"pickman/inventory-index/internal/models"
	"pickman/inventory-index/internal/parsererror"
	"pickman/inventory-index/internal/store"
)

func testIndex() *catalog.Index {
	return catalog.Build([]models.CatalogItem{
		{UUID: "rifle", Name: "Laser Rifle", CategoryID: int64Ptr(1)},
		{ID: int64Ptr(0), Name: "Med Pen"},
		{Name: "Ore"},
		{UUID: "vest", Name: "Armor Vest"},
	}, models.CategoryLookup{1: {ID: 1, Section: "Weapons", Name: "Rifles"}})
}

func newMerger(t *testing.T) (*Merger, *store.InventoryStore, string) {
	t.Helper()
	dir := t.TempDir()
	s := store.NewInventoryStore(filepath.Join(dir, "inventory.json"), logging.NewMockLogger())
	return NewMerger(s, logging.NewMockLogger(), ""), s, dir
}

func TestExportImportRoundTrip(t *testing.T) {
	for _, ext := range SupportedExtensions() {
		t.Run(ext, func(t *testing.T) {
			m, s, dir := newMerger(t)
			idx := testIndex()
			s.SetQuantity("uuid:rifle", "3")
			s.SetSellPrice("uuid:rifle", "1,500")
			s.SetSellPrice("id:0", "trade only")
			s.SetQuantity("name:Ore", "2.5")
			want := s.Snapshot()

			path, err := m.Export(filepath.Join(dir, "index"+ext), idx)
			require.NoError(t, err)

			fresh := store.NewInventoryStore(filepath.Join(dir, "fresh.json"), logging.NewMockLogger())
			result, err := NewMerger(fresh, logging.NewMockLogger(), "").Import(path, idx)
			require.NoError(t, err)

			assert.Equal(t, 3, result.Imported)
			assert.Empty(t, result.Unmatched)
			got := fresh.Snapshot()
			require.Len(t, got, len(want))
			for key, rec := range want {
				assert.True(t, rec.Equal(got[key]), "%s: want %v got %v", key, rec, got[key])
			}
		})
	}
}

func TestExport_DefaultsToJSON(t *testing.T) {
	m, s, dir := newMerger(t)
	s.SetQuantity("uuid:vest", "1")

	path, err := m.Export(filepath.Join(dir, "inventory_index"), testIndex())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "inventory_index.json"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc, 1)
	assert.Equal(t, "Armor Vest", doc[0]["Item Name"])
}

func TestExport_UnsupportedExtension(t *testing.T) {
	m, _, dir := newMerger(t)

	_, err := m.Export(filepath.Join(dir, "index.pdf"), testIndex())

	var unsupported *parsererror.UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))
	assert.NoFileExists(t, filepath.Join(dir, "index.pdf"))
}

func TestImportRecords_ReportsUnmatchedSortedAndUnique(t *testing.T) {
	m, s, _ := newMerger(t)

	result, err := m.ImportRecords([]RawRecord{
		{Name: "Zeta", Quantity: 1},
		{Name: "Laser Rifle", Quantity: "4"},
		{Name: "Alpha", Quantity: 1},
		{Name: "Zeta", Quantity: 2},
		{Name: "", Quantity: 9},
	}, testIndex())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"Alpha", "Zeta"}, result.Unmatched)
	assert.Equal(t, "4", s.Quantity("uuid:rifle").String())
	assert.Equal(t, 1, s.Len())
}

func TestImportRecords_MergeRules(t *testing.T) {
	m, s, _ := newMerger(t)
	s.SetQuantity("uuid:rifle", "5")
	s.SetSellPrice("uuid:rifle", "900")
	s.SetQuantity("uuid:vest", "2")
	s.SetSellPrice("id:0", "100")

	_, err := m.ImportRecords([]RawRecord{
		{Name: "Laser Rifle", Quantity: "not a number", SellValue: "N/A"},
		{Name: "Armor Vest", Quantity: 0},
		{Name: "Med Pen", Quantity: "1,200", SellValue: float64(0)},
	}, testIndex())
	require.NoError(t, err)

	rifle, ok := s.Record("uuid:rifle")
	require.True(t, ok)
	assert.True(t, rifle.Quantity.IsZero(), "unparsable quantity defaults to zero")
	label, _ := rifle.SellPrice.Label()
	assert.Equal(t, "N/A", label)

	_, ok = s.Record("uuid:vest")
	assert.False(t, ok, "zero quantity without sell value is pruned")

	pen, ok := s.Record("id:0")
	require.True(t, ok)
	assert.Equal(t, "1200", pen.Quantity.String())
	amount, ok := pen.SellPrice.Amount()
	require.True(t, ok, "an imported zero sell price is stored")
	assert.True(t, amount.IsZero())
}

func TestImportRecords_PersistsOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.json")
	logger := logging.NewMockLogger()
	s := store.NewInventoryStore(path, logger)
	m := NewMerger(s, logging.NewMockLogger(), "")

	_, err := m.ImportRecords([]RawRecord{
		{Name: "Laser Rifle", Quantity: 1},
		{Name: "Armor Vest", Quantity: 2},
		{Name: "Ore", Quantity: 3},
	}, testIndex())
	require.NoError(t, err)

	saves := 0
	for _, e := range logger.GetEntriesByLevel("DEBUG") {
		if e.Message == "Saved inventory" {
			saves++
		}
	}
	assert.Equal(t, 1, saves)
	assert.FileExists(t, path)
}

func TestImport_StructuralFailureLeavesLedgerUntouched(t *testing.T) {
	m, s, dir := newMerger(t)
	s.SetQuantity("uuid:rifle", "5")
	before := s.Snapshot()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"Item Name": "Laser Rifle", "QTY": 1}`), 0600))

	_, err := m.Import(bad, testIndex())

	var invalid *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, bad, invalid.FilePath)
	assert.Equal(t, before, s.Snapshot())
}

func TestImport_UnsupportedAndMissing(t *testing.T) {
	m, _, dir := newMerger(t)

	_, err := m.Import(filepath.Join(dir, "index.pdf"), testIndex())
	var unsupported *parsererror.UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))

	_, err = m.Import(filepath.Join(dir, "missing.json"), testIndex())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
