package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StandardBrand is the sentinel make/brand applied when a material line does
// not name one. Two lines with the same item, type and brand are fungible.
const StandardBrand = "standard"

// Quantity is a numeric amount that can be explicitly "not applicable".
// A blank Quantity is distinct from zero: zero is a real measurement, blank
// means no numeric value could be derived for the line.
type Quantity struct {
	Value float64
	Valid bool
}

// Qty returns a valid quantity.
func Qty(v float64) Quantity {
	return Quantity{Value: v, Valid: true}
}

// BlankQty returns the blank sentinel.
func BlankQty() Quantity {
	return Quantity{}
}

// Or returns the quantity's value, or 0 when blank. Callers that need to
// distinguish "zero" from "not applicable" must check Valid instead.
func (q Quantity) Or() float64 {
	if !q.Valid {
		return 0
	}
	return q.Value
}

// MarshalJSON renders a blank quantity as "" so spreadsheet and dashboard
// consumers show an empty cell rather than a misleading 0.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.Valid {
		return []byte(`""`), nil
	}
	return json.Marshal(q.Value)
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*q = Qty(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*q = ParseQuantity(s)
		return nil
	}
	*q = BlankQty()
	return nil
}

func (q Quantity) String() string {
	if !q.Valid {
		return ""
	}
	return strconv.FormatFloat(q.Value, 'f', -1, 64)
}

// ParseQuantity parses a free-text quantity permissively. Only digits and the
// first decimal point are considered; a string with no digits is blank.
func ParseQuantity(s string) Quantity {
	n, ok := extractNumber(s)
	if !ok {
		return BlankQty()
	}
	return Qty(n)
}

// ExtractNumber pulls the first numeric value out of free text such as
// "50 mtr approx". Absence of any digit yields 0. It never fails.
func ExtractNumber(s string) float64 {
	n, _ := extractNumber(s)
	return n
}

func extractNumber(s string) (float64, bool) {
	var b strings.Builder
	seenDigit := false
	seenDot := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			seenDigit = true
			b.WriteRune(r)
			continue
		}
		if r == '.' && !seenDot {
			seenDot = true
			b.WriteRune(r)
			continue
		}
		if seenDigit {
			// stop at the end of the first run of digits
			break
		}
		// discard a lone dot seen before any digit
		b.Reset()
		seenDot = false
	}
	if !seenDigit {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(b.String(), "."), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaterialLine is one row of a project's bill of materials, either produced
// by the rule engine or supplied directly for custom projects.
type MaterialLine struct {
	Serial   int      `json:"serial"`
	Item     string   `json:"item"`
	Type     string   `json:"type"`
	Make     string   `json:"make"`
	Quantity Quantity `json:"quantity"`
	Unit     string   `json:"unit"`
}

// Key returns the stock identity of the line.
func (l MaterialLine) Key() StockKey {
	return NewStockKey(l.Item, l.Type, l.Make)
}

// StockKey is the canonical (item, type, brand) identity for a stocked unit.
// Always build it through NewStockKey so normalization happens exactly once.
type StockKey struct {
	Item  string `json:"item"`
	Type  string `json:"type"`
	Brand string `json:"brand"`
}

// NewStockKey trims the parts and defaults a blank brand to "standard".
func NewStockKey(item, typ, brand string) StockKey {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		brand = StandardBrand
	}
	return StockKey{
		Item:  strings.TrimSpace(item),
		Type:  strings.TrimSpace(typ),
		Brand: brand,
	}
}
