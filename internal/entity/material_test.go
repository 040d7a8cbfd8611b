package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"50", 50},
		{"50 mtr", 50},
		{"approx 42.5 m", 42.5},
		{"  .5 roll", 0.5},
		{"12..5", 12},
		{"length 30, spare 10", 30},
		{"", 0},
		{"to be decided", 0},
		{"n/a", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractNumber(tt.in), "input %q", tt.in)
	}
}

func TestParseQuantityBlankVersusZero(t *testing.T) {
	assert.False(t, ParseQuantity("n/a").Valid, "no digits means blank")
	assert.False(t, ParseQuantity("").Valid)

	zero := ParseQuantity("0")
	require.True(t, zero.Valid, "an explicit 0 is a real measurement")
	assert.Equal(t, 0.0, zero.Value)
}

func TestQuantityJSON(t *testing.T) {
	b, err := json.Marshal(Qty(12.5))
	require.NoError(t, err)
	assert.Equal(t, "12.5", string(b))

	b, err = json.Marshal(BlankQty())
	require.NoError(t, err)
	assert.Equal(t, `""`, string(b), "blank renders as an empty cell")

	var q Quantity
	require.NoError(t, json.Unmarshal([]byte(`"7 nos"`), &q))
	assert.Equal(t, Qty(7), q)

	require.NoError(t, json.Unmarshal([]byte(`""`), &q))
	assert.False(t, q.Valid)
}

func TestNewStockKeyNormalization(t *testing.T) {
	key := NewStockKey(" Wires ", " DC ", "")
	assert.Equal(t, StockKey{Item: "Wires", Type: "DC", Brand: StandardBrand}, key)

	branded := NewStockKey("Wires", "DC", " Polycab ")
	assert.Equal(t, "Polycab", branded.Brand)

	// same normalized identity hashes the same
	assert.Equal(t, key, NewStockKey("Wires", "DC", "  "))
}

func TestThresholdPairValidate(t *testing.T) {
	assert.NoError(t, ThresholdPair{Critical: 2, Low: 10}.Validate())
	assert.ErrorIs(t, ThresholdPair{Critical: 10, Low: 10}.Validate(), ErrThresholdOrder)
	assert.ErrorIs(t, ThresholdPair{Critical: 12, Low: 10}.Validate(), ErrThresholdOrder)
}

func TestThresholdConfigForItem(t *testing.T) {
	cfg := ThresholdConfig{
		Global:    ThresholdPair{Critical: 2, Low: 5},
		Overrides: map[string]ThresholdPair{"Solar Panel": {Critical: 10, Low: 25}},
	}
	assert.Equal(t, ThresholdPair{Critical: 10, Low: 25}, cfg.ForItem("Solar Panel"))
	assert.Equal(t, ThresholdPair{Critical: 2, Low: 5}, cfg.ForItem("DCDB"))
}
