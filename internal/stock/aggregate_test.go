package stock

import (
	"sort"
	"testing"

	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectSpec(id, customer string, kw float64) entity.ProjectSpec {
	return entity.ProjectSpec{
		ID:           id,
		Customer:     customer,
		CapacityKW:   kw,
		PanelWattage: 550,
		Phase:        entity.PhaseSingle,
		LegCount:     4,
		TableOption:  entity.TableOptionStandard,
	}
}

func TestAggregateRequirementsSumsAcrossProjects(t *testing.T) {
	specs := []entity.ProjectSpec{
		projectSpec("p1", "Sharma Residence", 5.5),
		projectSpec("p2", "Verma Warehouse", 5.5),
	}

	required := AggregateRequirements(specs)

	panelKey := entity.NewStockKey("Solar Panel", "550 Wp Mono PERC Half-Cut", "")
	agg := required[panelKey]
	require.NotNil(t, agg)
	assert.Equal(t, 20.0, agg.Quantity, "10 panels per 5.5 kW project")
	assert.Equal(t, []string{"Sharma Residence", "Verma Warehouse"}, agg.Consumers)
}

func TestAggregateRequirementsConsumerIdempotent(t *testing.T) {
	// the same customer twice contributes quantity twice, name once
	specs := []entity.ProjectSpec{
		projectSpec("p1", "Sharma Residence", 5.5),
		projectSpec("p2", "Sharma Residence", 5.5),
	}

	required := AggregateRequirements(specs)
	agg := required[entity.NewStockKey("Solar Panel", "550 Wp Mono PERC Half-Cut", "")]
	require.NotNil(t, agg)
	assert.Equal(t, 20.0, agg.Quantity)
	assert.Equal(t, []string{"Sharma Residence"}, agg.Consumers)
}

func TestAggregateRequirementsCustomProject(t *testing.T) {
	custom := entity.ProjectSpec{
		ID:          "p3",
		Customer:    "Gupta Factory",
		TableOption: entity.TableOptionCustom,
		CustomLines: []entity.CustomLine{
			{Serial: 1, Item: "Solar Panel", Type: "550 Wp Mono PERC Half-Cut", Quantity: "15", Unit: "Nos"},
			{Serial: 2, Item: "Walkway", Type: "", Quantity: "10", Unit: "Mtr"},      // no type: skipped
			{Serial: 3, Item: "Spare Clamp", Type: "Mid", Quantity: "n/a", Unit: ""}, // blank qty: 0
		},
	}
	specs := []entity.ProjectSpec{projectSpec("p1", "Sharma Residence", 5.5), custom}

	required := AggregateRequirements(specs)

	agg := required[entity.NewStockKey("Solar Panel", "550 Wp Mono PERC Half-Cut", "")]
	require.NotNil(t, agg)
	assert.Equal(t, 25.0, agg.Quantity)
	assert.Equal(t, []string{"Gupta Factory", "Sharma Residence"}, agg.Consumers)

	_, ok := required[entity.NewStockKey("Walkway", "", "")]
	assert.False(t, ok, "lines without a type cannot be charged to a stock key")

	clamp := required[entity.NewStockKey("Spare Clamp", "Mid", "")]
	require.NotNil(t, clamp)
	assert.Equal(t, 0.0, clamp.Quantity, "blank quantity contributes nothing")
	assert.Equal(t, []string{"Gupta Factory"}, clamp.Consumers)
}

func TestAggregateRequirementsAdditive(t *testing.T) {
	a := projectSpec("p1", "Sharma Residence", 5.5)
	b := projectSpec("p2", "Verma Warehouse", 8)
	c := projectSpec("p3", "Gupta Factory", 3)

	whole := AggregateRequirements([]entity.ProjectSpec{a, b, c})

	left := AggregateRequirements([]entity.ProjectSpec{a})
	right := AggregateRequirements([]entity.ProjectSpec{b, c})

	merged := make(map[entity.StockKey]*RequiredAggregate)
	for _, part := range []map[entity.StockKey]*RequiredAggregate{left, right} {
		for key, agg := range part {
			if existing, ok := merged[key]; ok {
				existing.Quantity += agg.Quantity
				existing.Consumers = append(existing.Consumers, agg.Consumers...)
				sort.Strings(existing.Consumers)
			} else {
				merged[key] = &RequiredAggregate{Quantity: agg.Quantity, Consumers: append([]string(nil), agg.Consumers...)}
			}
		}
	}

	require.Equal(t, len(whole), len(merged))
	for key, want := range whole {
		got := merged[key]
		require.NotNil(t, got, "missing key %v", key)
		assert.InDelta(t, want.Quantity, got.Quantity, 1e-9, "key %v", key)
		assert.Equal(t, want.Consumers, got.Consumers, "key %v", key)
	}
}
