package stock

import (
	"sort"

	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
)

// Shortage status, in precedence order.
const (
	StatusMissing      = "missing"
	StatusInsufficient = "insufficient"
	StatusCritical     = "critical"
	StatusLow          = "low"
)

var statusRank = map[string]int{
	StatusMissing:      0,
	StatusInsufficient: 1,
	StatusCritical:     2,
	StatusLow:          3,
}

// ShortageRecord is one alert row. Shortfall is blank except for the
// requirement-driven statuses, and Consumers is only set when a requirement
// drove the record.
type ShortageRecord struct {
	Key       entity.StockKey `json:"key"`
	Status    string          `json:"status"`
	Current   float64         `json:"current"`
	Shortfall entity.Quantity `json:"shortfall"`
	Consumers []string        `json:"consumers,omitempty"`
}

// Classify joins the aggregated requirements, the ledger balances and the
// threshold configuration into a sorted alert list.
//
// A key with a positive requirement is judged against that requirement
// (missing / insufficient / satisfied) and never against the ledger-only
// thresholds, so no key is ever emitted twice. Keys known only to the ledger
// are judged against the per-item (or global) critical/low pair. A key with
// no balance entry has current 0.
func Classify(
	required map[entity.StockKey]*RequiredAggregate,
	balances map[entity.StockKey]float64,
	thresholds entity.ThresholdConfig,
) []ShortageRecord {
	records := make([]ShortageRecord, 0, len(required)+len(balances))

	for key, agg := range required {
		if agg == nil || agg.Quantity <= 0 {
			continue
		}
		current := balances[key]
		switch {
		case current <= 0:
			records = append(records, ShortageRecord{
				Key:       key,
				Status:    StatusMissing,
				Current:   current,
				Shortfall: entity.Qty(agg.Quantity),
				Consumers: agg.Consumers,
			})
		case current < agg.Quantity:
			records = append(records, ShortageRecord{
				Key:       key,
				Status:    StatusInsufficient,
				Current:   current,
				Shortfall: entity.Qty(agg.Quantity - current),
				Consumers: agg.Consumers,
			})
		}
	}

	for key, current := range balances {
		if agg, ok := required[key]; ok && agg != nil && agg.Quantity > 0 {
			// already judged against its requirement
			continue
		}
		pair := thresholds.ForItem(key.Item)
		switch {
		case current <= 0:
			records = append(records, ShortageRecord{Key: key, Status: StatusMissing, Current: current})
		case current <= pair.Critical:
			records = append(records, ShortageRecord{Key: key, Status: StatusCritical, Current: current})
		case current <= pair.Low:
			records = append(records, ShortageRecord{Key: key, Status: StatusLow, Current: current})
		}
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if statusRank[a.Status] != statusRank[b.Status] {
			return statusRank[a.Status] < statusRank[b.Status]
		}
		if a.Shortfall.Or() != b.Shortfall.Or() {
			return a.Shortfall.Or() > b.Shortfall.Or()
		}
		if a.Current != b.Current {
			return a.Current < b.Current
		}
		// stable tail ordering so repeated runs agree byte for byte
		if a.Key.Item != b.Key.Item {
			return a.Key.Item < b.Key.Item
		}
		if a.Key.Type != b.Key.Type {
			return a.Key.Type < b.Key.Type
		}
		return a.Key.Brand < b.Key.Brand
	})

	return records
}
