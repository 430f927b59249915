package uex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"pickman/inventory-index/internal/models"
	"pickman/inventory-index/internal/numparse"
)

// StatusOK is the envelope status of a successful UEX response.
const StatusOK = "ok"

// decodeJSON parses a response body keeping numbers exact.
func decodeJSON(body []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return doc, nil
}

// envelopeData checks the {"status": "ok", "data": [...]} envelope and returns
// the data list. A missing data field is an empty list.
func envelopeData(doc interface{}) ([]interface{}, error) {
	if _, ok := doc.(map[string]interface{}); !ok {
		return nil, fmt.Errorf("unexpected response: not an object")
	}

	status, err := jsonpath.Get("$.status", doc)
	if err != nil || status != StatusOK {
		return nil, fmt.Errorf("unexpected response status %v", status)
	}

	data, err := jsonpath.Get("$.data", doc)
	if err != nil || data == nil {
		return nil, nil
	}
	list, ok := data.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected response: data is %T, not a list", data)
	}
	return list, nil
}

// DecodeItems converts the entries of a marketplace list into catalog items.
// Entries that are not objects are skipped.
func DecodeItems(list []interface{}) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		items = append(items, models.CatalogItem{
			UUID:       stringField(obj["item_uuid"]),
			ID:         intField(obj["id_item"]),
			Name:       stringField(obj["item_name"]),
			PriceSell:  decimalField(obj["price_sell"]),
			PriceBuy:   decimalField(obj["price_buy"]),
			CategoryID: intField(obj["id_category"]),
		})
	}
	return items
}

// DecodeCategories keeps the item categories of a category list, keyed by
// id. Entries without a usable id are skipped; an entry without a type counts
// as an item category.
func DecodeCategories(list []interface{}) models.CategoryLookup {
	lookup := make(models.CategoryLookup, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if kind := stringField(obj["type"]); kind != "" && kind != "item" {
			continue
		}
		id := intField(obj["id"])
		if id == nil {
			continue
		}
		lookup[*id] = models.Category{
			ID:      *id,
			Section: stringField(obj["section"]),
			Name:    stringField(obj["name"]),
		}
	}
	return lookup
}

func stringField(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// intField accepts JSON numbers and numeric strings such as "12".
func intField(v interface{}) *int64 {
	var text string
	switch n := v.(type) {
	case nil:
		return nil
	case json.Number:
		text = n.String()
	case string:
		text = strings.TrimSpace(n)
	case float64:
		i := int64(n)
		return &i
	default:
		return nil
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return &i
	}
	if d, err := decimal.NewFromString(text); err == nil {
		i := d.IntPart()
		return &i
	}
	return nil
}

func decimalField(v interface{}) *decimal.Decimal {
	d, ok := numparse.FromValue(v)
	if !ok {
		return nil
	}
	return &d
}
