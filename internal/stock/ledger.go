// Package stock holds the derived inventory computations: the running
// balance ledger, the cross-project requirement aggregation and the shortage
// classification. Everything here is a pure function of an input snapshot;
// nothing is persisted or cached, so re-running after any store write is
// always consistent.
package stock

import "github.com/kd-lxdia/RockrSolar-sub000/internal/entity"

// ComputeBalance folds an event set into a per-key running balance:
// Σ IN quantities − Σ OUT quantities, with brands normalized through
// NewStockKey. The result is independent of event order. Duplicate event
// identities are summed as given; identity uniqueness is the store's job.
func ComputeBalance(events []entity.StockEvent) map[entity.StockKey]float64 {
	balances := make(map[entity.StockKey]float64, len(events))
	for _, e := range events {
		balances[e.Key()] += e.Signed()
	}
	return balances
}
