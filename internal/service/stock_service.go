package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/repository"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/stock"
	"github.com/shopspring/decimal"
)

// StockService records stock movements and exposes the derived balances.
type StockService struct {
	eventRepo *repository.StockEventRepository
}

func NewStockService(eventRepo *repository.StockEventRepository) *StockService {
	return &StockService{eventRepo: eventRepo}
}

type RecordEventRequest struct {
	Item      string          `json:"item" binding:"required"`
	Type      string          `json:"type"`
	Brand     string          `json:"brand"`
	Direction string          `json:"direction" binding:"required,oneof=IN OUT"`
	Quantity  float64         `json:"quantity" binding:"required,gt=0"`
	Rate      decimal.Decimal `json:"rate"`
}

// RecordEvent appends one movement to the log. The key fields are stored
// normalized so every later lookup agrees on identity.
func (s *StockService) RecordEvent(req RecordEventRequest) (*entity.StockEvent, error) {
	key := entity.NewStockKey(req.Item, req.Type, req.Brand)
	event := &entity.StockEvent{
		ID:        uuid.New().String(),
		Item:      key.Item,
		Type:      key.Type,
		Brand:     key.Brand,
		Direction: req.Direction,
		Quantity:  req.Quantity,
		Rate:      req.Rate,
		CreatedAt: time.Now(),
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("record stock event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes a movement permanently. Deletion is not a reversal;
// the event simply stops contributing to the balance.
func (s *StockService) DeleteEvent(id string) error {
	if _, err := s.eventRepo.GetByID(id); err != nil {
		return fmt.Errorf("stock event not found: %w", err)
	}
	return s.eventRepo.Delete(id)
}

func (s *StockService) ListEvents(params repository.StockEventListParams) ([]entity.StockEvent, int64, error) {
	return s.eventRepo.List(params)
}

// Balances folds the full event log into the current per-key quantities.
func (s *StockService) Balances() (map[entity.StockKey]float64, error) {
	events, err := s.eventRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("load stock events: %w", err)
	}
	return stock.ComputeBalance(events), nil
}
