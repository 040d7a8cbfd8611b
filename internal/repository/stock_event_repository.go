package repository

import (
	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
	"gorm.io/gorm"
)

type StockEventRepository struct {
	db *gorm.DB
}

func NewStockEventRepository(db *gorm.DB) *StockEventRepository {
	return &StockEventRepository{db: db}
}

func (r *StockEventRepository) Create(event *entity.StockEvent) error {
	return r.db.Create(event).Error
}

// Delete removes the event wholesale. No compensating entry is written;
// the balance simply loses this event's contribution.
func (r *StockEventRepository) Delete(id string) error {
	return r.db.Delete(&entity.StockEvent{}, "id = ?", id).Error
}

func (r *StockEventRepository) GetByID(id string) (*entity.StockEvent, error) {
	var event entity.StockEvent
	if err := r.db.First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

type StockEventListParams struct {
	Item      string
	Brand     string
	Direction string
	Page      int
	Size      int
}

func (r *StockEventRepository) List(params StockEventListParams) ([]entity.StockEvent, int64, error) {
	query := r.db.Model(&entity.StockEvent{})
	if params.Item != "" {
		query = query.Where("item ILIKE ?", "%"+params.Item+"%")
	}
	if params.Brand != "" {
		query = query.Where("brand = ?", params.Brand)
	}
	if params.Direction != "" {
		query = query.Where("direction = ?", params.Direction)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Page > 0 && params.Size > 0 {
		query = query.Offset((params.Page - 1) * params.Size).Limit(params.Size)
	}

	var events []entity.StockEvent
	err := query.Order("created_at DESC").Find(&events).Error
	return events, total, err
}

// ListAll returns the full event log, the snapshot the ledger folds.
func (r *StockEventRepository) ListAll() ([]entity.StockEvent, error) {
	var events []entity.StockEvent
	err := r.db.Order("created_at ASC").Find(&events).Error
	return events, err
}
