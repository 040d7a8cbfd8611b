package stock

import (
	"math/rand"
	"testing"

	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(item, typ, brand, dir string, qty float64) entity.StockEvent {
	return entity.StockEvent{Item: item, Type: typ, Brand: brand, Direction: dir, Quantity: qty}
}

func TestComputeBalanceSignedSum(t *testing.T) {
	events := []entity.StockEvent{
		event("Wires", "DC", "standard", entity.DirectionIn, 10),
		event("Wires", "DC", "standard", entity.DirectionOut, 4),
	}

	balances := ComputeBalance(events)
	require.Len(t, balances, 1)
	assert.Equal(t, 6.0, balances[entity.NewStockKey("Wires", "DC", "")])
}

func TestComputeBalanceBrandNormalization(t *testing.T) {
	events := []entity.StockEvent{
		event("Wires", "DC", "", entity.DirectionIn, 10),
		event("Wires", "DC", "standard", entity.DirectionOut, 3),
		event("Wires", "DC", "Polycab", entity.DirectionIn, 5),
	}

	balances := ComputeBalance(events)
	require.Len(t, balances, 2, "blank brand and explicit standard are the same key")
	assert.Equal(t, 7.0, balances[entity.NewStockKey("Wires", "DC", "")])
	assert.Equal(t, 5.0, balances[entity.NewStockKey("Wires", "DC", "Polycab")])
}

func TestComputeBalanceOrderIndependent(t *testing.T) {
	events := []entity.StockEvent{
		event("Wires", "DC", "", entity.DirectionIn, 10),
		event("Wires", "DC", "", entity.DirectionOut, 4),
		event("MCB", "63A 2 POLE", "", entity.DirectionIn, 3),
		event("Wires", "AC", "", entity.DirectionIn, 2.5),
		event("MCB", "63A 2 POLE", "", entity.DirectionOut, 5),
	}
	want := ComputeBalance(events)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]entity.StockEvent, len(events))
		copy(shuffled, events)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, ComputeBalance(shuffled))
	}
}

func TestComputeBalanceRemovalDropsContribution(t *testing.T) {
	events := []entity.StockEvent{
		event("Wires", "DC", "", entity.DirectionIn, 10),
		event("Wires", "DC", "", entity.DirectionOut, 4),
		event("Wires", "DC", "", entity.DirectionIn, 7),
	}
	key := entity.NewStockKey("Wires", "DC", "")

	full := ComputeBalance(events)
	assert.Equal(t, 13.0, full[key])

	// deleting the OUT event raises the balance by exactly its signed share
	without := ComputeBalance(append([]entity.StockEvent{events[0]}, events[2]))
	assert.Equal(t, full[key]-(-4.0), without[key])
}

func TestComputeBalanceDoesNotDeduplicate(t *testing.T) {
	dup := event("Wires", "DC", "", entity.DirectionIn, 10)
	dup.ID = "same-id"
	balances := ComputeBalance([]entity.StockEvent{dup, dup})
	assert.Equal(t, 20.0, balances[entity.NewStockKey("Wires", "DC", "")],
		"identity uniqueness is the store's responsibility")
}
