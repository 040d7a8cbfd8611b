package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/repository"
	"github.com/redis/go-redis/v9"
)

// ThresholdChangedChannel carries a notification after every successful
// threshold write. Subscribers re-run the classifier on their own schedule;
// the classifier itself always takes an explicit config snapshot.
const ThresholdChangedChannel = "solarstock:thresholds:changed"

type ThresholdService struct {
	repo *repository.ThresholdRepository
	rdb  *redis.Client
}

func NewThresholdService(repo *repository.ThresholdRepository, rdb *redis.Client) *ThresholdService {
	return &ThresholdService{repo: repo, rdb: rdb}
}

func (s *ThresholdService) Get() (entity.ThresholdConfig, error) {
	return s.repo.Load()
}

// Update validates and persists the whole configuration. The critical < low
// invariant is enforced here, at the write boundary — an invalid pair is
// rejected, never silently corrected.
func (s *ThresholdService) Update(ctx context.Context, cfg entity.ThresholdConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := s.repo.Save(cfg); err != nil {
		return fmt.Errorf("save thresholds: %w", err)
	}
	s.notify(ctx)
	return nil
}

// UpsertItem validates and writes one per-item override.
func (s *ThresholdService) UpsertItem(ctx context.Context, item string, pair entity.ThresholdPair) error {
	if item == "" {
		return fmt.Errorf("item name is required for an override")
	}
	if err := pair.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpsertItem(item, pair); err != nil {
		return fmt.Errorf("save threshold override: %w", err)
	}
	s.notify(ctx)
	return nil
}

func (s *ThresholdService) notify(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	payload, _ := json.Marshal(map[string]any{"changed_at": time.Now().Format(time.RFC3339)})
	// best effort: a missed notification only delays the next classify run
	s.rdb.Publish(ctx, ThresholdChangedChannel, payload)
}
