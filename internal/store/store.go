// Package store owns the persisted inventory ledger: a single JSON file that
// maps item identity keys to the quantity and sell price recorded by the user.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"pickman/inventory-index/internal/display"
	"pickman/inventory-index/internal/fileutils"
	"pickman/inventory-index/internal/logging"
	"pickman/inventory-index/internal/models"
	"pickman/inventory-index/internal/numparse"
)

// DefaultInventoryFile is the ledger file name used when none is configured.
const DefaultInventoryFile = "inventory.json"

// InventoryStore keeps the ledger in memory and writes it back to disk after
// every mutation. In-memory state is authoritative: write failures are logged
// and the session carries on.
type InventoryStore struct {
	path   string
	ledger models.Ledger
	logger logging.Logger
}

// NewInventoryStore creates a store bound to path. Call Load to read it.
func NewInventoryStore(path string, logger logging.Logger) *InventoryStore {
	if path == "" {
		path = DefaultInventoryFile
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &InventoryStore{
		path:   path,
		ledger: models.Ledger{},
		logger: logger,
	}
}

// Path returns the ledger file location.
func (s *InventoryStore) Path() string {
	return s.path
}

// Load reads the ledger file, replacing the in-memory ledger. A missing or
// unreadable file yields an empty ledger; Load never fails.
func (s *InventoryStore) Load() models.Ledger {
	log := s.logger.WithField(logging.FieldFile, s.path)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("Inventory file not found, starting with an empty ledger")
		} else {
			log.WithError(err).Warn("Failed to read inventory file, starting with an empty ledger")
		}
		s.ledger = models.Ledger{}
		return s.Snapshot()
	}

	ledger, legacy, err := decodeLedger(data)
	if err != nil {
		log.WithError(err).Warn("Inventory file is corrupt, starting with an empty ledger")
		s.ledger = models.Ledger{}
		return s.Snapshot()
	}

	s.ledger = ledger
	log.Debug("Loaded inventory",
		logging.F(logging.FieldCount, len(ledger)),
		logging.F("legacy_entries", legacy))
	return s.Snapshot()
}

// Snapshot returns a copy of the current ledger.
func (s *InventoryStore) Snapshot() models.Ledger {
	return s.ledger.Clone()
}

// Len returns the number of records.
func (s *InventoryStore) Len() int {
	return len(s.ledger)
}

// Record returns the record stored for key.
func (s *InventoryStore) Record(key models.IdentityKey) (models.LedgerRecord, bool) {
	rec, ok := s.ledger[key]
	return rec, ok
}

// Quantity returns the quantity recorded for key, or zero.
func (s *InventoryStore) Quantity(key models.IdentityKey) decimal.Decimal {
	return s.ledger.Quantity(key)
}

// SellPrice returns the sell price recorded for key.
func (s *InventoryStore) SellPrice(key models.IdentityKey) models.SellPrice {
	return s.ledger[key].SellPrice
}

// Change is a computed but not yet applied edit of one record.
type Change struct {
	Key    models.IdentityKey
	Record models.LedgerRecord
	// Display is the canonical text of the edited value, for the caller to
	// render in place of what the user typed.
	Display string
}

// Removes reports whether committing the change deletes the record.
func (c Change) Removes() bool {
	return c.Record.Prunable()
}

// PlanQuantity computes the effect of the user typing raw into the quantity
// of key. Unparsable or empty text means zero. The sell price is preserved.
func (s *InventoryStore) PlanQuantity(key models.IdentityKey, raw string) Change {
	rec := s.ledger[key]
	rec.Quantity = numparse.TextOrZero(raw)
	return Change{
		Key:     key,
		Record:  rec,
		Display: display.Quantity(rec.Quantity),
	}
}

// PlanSellPrice computes the effect of the user typing raw into the sell price
// of key. Empty text clears the price, as does a number that is zero or
// negative. A positive number is stored and displayed with thousands
// separators; any other text is stored verbatim as a label.
func (s *InventoryStore) PlanSellPrice(key models.IdentityKey, raw string) Change {
	rec := s.ledger[key]

	switch amount, ok := numparse.ParseText(raw); {
	case numparse.Standardize(raw) == "":
		rec.SellPrice = models.NoSellPrice()
	case ok && !amount.IsPositive():
		rec.SellPrice = models.NoSellPrice()
	case ok:
		rec.SellPrice = models.NumericSellPrice(amount)
	default:
		rec.SellPrice = models.LabelSellPrice(raw)
	}

	return Change{
		Key:     key,
		Record:  rec,
		Display: display.SellPrice(rec.SellPrice),
	}
}

// Commit applies a planned change and persists the ledger.
func (s *InventoryStore) Commit(c Change) {
	s.ledger.Put(c.Key, c.Record)
	s.persist()
}

// SetQuantity parses raw as the quantity of key, applies it and persists.
func (s *InventoryStore) SetQuantity(key models.IdentityKey, raw string) {
	s.Commit(s.PlanQuantity(key, raw))
}

// SetSellPrice parses raw as the sell price of key, applies it, persists, and
// returns the canonical display text.
func (s *InventoryStore) SetSellPrice(key models.IdentityKey, raw string) string {
	c := s.PlanSellPrice(key, raw)
	s.Commit(c)
	return c.Display
}

// Update runs fn against a working copy of the ledger. When fn succeeds the
// copy replaces the ledger and is persisted once; when it fails the ledger is
// left untouched and the error is returned.
func (s *InventoryStore) Update(fn func(models.Ledger) error) error {
	working := s.ledger.Clone()
	if err := fn(working); err != nil {
		return err
	}
	for key, rec := range working {
		if rec.Prunable() {
			delete(working, key)
		}
	}
	s.ledger = working
	s.persist()
	return nil
}

// Save writes the ledger to disk and reports any failure.
func (s *InventoryStore) Save() error {
	data, err := encodeLedger(s.ledger)
	if err != nil {
		return fmt.Errorf("error encoding inventory: %w", err)
	}
	if err := fileutils.WriteFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("error writing inventory: %w", err)
	}
	return nil
}

func (s *InventoryStore) persist() {
	if err := s.Save(); err != nil {
		s.logger.WithError(err).Error("Failed to save inventory",
			logging.F(logging.FieldFile, s.path))
		return
	}
	s.logger.Debug("Saved inventory",
		logging.F(logging.FieldFile, s.path),
		logging.F(logging.FieldCount, len(s.ledger)))
}

// wireRecord is the canonical on-disk form of a ledger record.
type wireRecord struct {
	Qty       json.Number `json:"qty"`
	SellPrice interface{} `json:"sell_price,omitempty"`
}

func encodeLedger(ledger models.Ledger) ([]byte, error) {
	out := make(map[string]wireRecord, len(ledger))
	for key, rec := range ledger {
		w := wireRecord{Qty: json.Number(rec.Quantity.String())}
		if amount, ok := rec.SellPrice.Amount(); ok {
			w.SellPrice = json.Number(amount.String())
		} else if label, ok := rec.SellPrice.Label(); ok {
			w.SellPrice = label
		}
		out[string(key)] = w
	}
	return json.MarshalIndent(out, "", "  ")
}

// decodeLedger accepts both the legacy form (key -> bare quantity) and the
// object form (key -> {"qty": n, "sell_price": n|"label"}) and returns a
// canonical ledger together with the number of legacy entries upgraded.
func decodeLedger(data []byte) (models.Ledger, int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, 0, err
	}
	if raw == nil {
		return nil, 0, errors.New("inventory file does not contain an object")
	}

	ledger := make(models.Ledger, len(raw))
	legacy := 0
	for key, value := range raw {
		rec, wasLegacy := normalizeEntry(value)
		if wasLegacy {
			legacy++
		}
		ledger.Put(models.IdentityKey(key), rec)
	}
	return ledger, legacy, nil
}

func normalizeEntry(value interface{}) (models.LedgerRecord, bool) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return models.LedgerRecord{Quantity: numparse.ValueOrZero(value)}, true
	}

	rec := models.LedgerRecord{Quantity: numparse.ValueOrZero(obj["qty"])}
	rec.SellPrice = SellPriceFromValue(obj["sell_price"])
	return rec, false
}

// SellPriceFromValue interprets a decoded value as a sell price: blank means
// absent, anything numeric is a number (zero included), other text a label.
func SellPriceFromValue(v interface{}) models.SellPrice {
	if numparse.IsBlank(v) {
		return models.NoSellPrice()
	}
	if amount, ok := numparse.FromValue(v); ok {
		return models.NumericSellPrice(amount)
	}
	if s, ok := v.(string); ok {
		return models.LabelSellPrice(s)
	}
	return models.LabelSellPrice(fmt.Sprint(v))
}
