package stock

import (
	"sort"

	"github.com/kd-lxdia/RockrSolar-sub000/internal/bom"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
)

// RequiredAggregate is the total requirement for one stock key across every
// project, with the distinct customers that contribute to it.
type RequiredAggregate struct {
	Quantity  float64  `json:"quantity"`
	Consumers []string `json:"consumers"`
}

type accumulator struct {
	quantity  float64
	consumers map[string]struct{}
}

// AggregateRequirements runs the rule engine over every project (or takes
// the stored custom lines for Custom projects) and folds the lines into a
// per-key total. Blank quantities contribute 0, lines with an empty type are
// skipped, and a customer appearing against the same key twice is counted
// once. The fold is associative and commutative over the project sequence.
func AggregateRequirements(specs []entity.ProjectSpec) map[entity.StockKey]*RequiredAggregate {
	accs := make(map[entity.StockKey]*accumulator)
	for _, spec := range specs {
		for _, line := range bom.Lines(spec) {
			if line.Type == "" {
				// no type means no stock key to charge the line to
				continue
			}
			key := line.Key()
			acc, ok := accs[key]
			if !ok {
				acc = &accumulator{consumers: make(map[string]struct{})}
				accs[key] = acc
			}
			acc.quantity += line.Quantity.Or()
			if spec.Customer != "" {
				acc.consumers[spec.Customer] = struct{}{}
			}
		}
	}

	required := make(map[entity.StockKey]*RequiredAggregate, len(accs))
	for key, acc := range accs {
		consumers := make([]string, 0, len(acc.consumers))
		for c := range acc.consumers {
			consumers = append(consumers, c)
		}
		sort.Strings(consumers)
		required[key] = &RequiredAggregate{Quantity: acc.quantity, Consumers: consumers}
	}
	return required
}
