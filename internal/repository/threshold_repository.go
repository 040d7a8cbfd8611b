package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ThresholdRepository struct {
	db *gorm.DB
}

func NewThresholdRepository(db *gorm.DB) *ThresholdRepository {
	return &ThresholdRepository{db: db}
}

// Load assembles the stored settings into a config value. With no global
// row the zero pair is returned; the classifier then treats any positive
// ledger-only balance as neither critical nor low.
func (r *ThresholdRepository) Load() (entity.ThresholdConfig, error) {
	var settings []entity.ThresholdSetting
	if err := r.db.Find(&settings).Error; err != nil {
		return entity.ThresholdConfig{}, err
	}

	cfg := entity.ThresholdConfig{Overrides: make(map[string]entity.ThresholdPair)}
	for _, s := range settings {
		if s.Item == "" {
			cfg.Global = s.Pair()
			continue
		}
		cfg.Overrides[s.Item] = s.Pair()
	}
	return cfg, nil
}

// Save replaces the whole configuration in one transaction. Validation
// happens at the service boundary before this is called.
func (r *ThresholdRepository) Save(cfg entity.ThresholdConfig) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.ThresholdSetting{}).Error; err != nil {
			return err
		}
		rows := make([]entity.ThresholdSetting, 0, len(cfg.Overrides)+1)
		now := time.Now()
		rows = append(rows, entity.ThresholdSetting{
			ID:        uuid.New().String(),
			Item:      "",
			Critical:  cfg.Global.Critical,
			Low:       cfg.Global.Low,
			UpdatedAt: now,
		})
		for item, pair := range cfg.Overrides {
			rows = append(rows, entity.ThresholdSetting{
				ID:        uuid.New().String(),
				Item:      item,
				Critical:  pair.Critical,
				Low:       pair.Low,
				UpdatedAt: now,
			})
		}
		return tx.Create(&rows).Error
	})
}

// UpsertItem writes one per-item override in place.
func (r *ThresholdRepository) UpsertItem(item string, pair entity.ThresholdPair) error {
	row := entity.ThresholdSetting{
		ID:        uuid.New().String(),
		Item:      item,
		Critical:  pair.Critical,
		Low:       pair.Low,
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item"}},
		DoUpdates: clause.AssignmentColumns([]string{"critical", "low", "updated_at"}),
	}).Create(&row).Error
}
