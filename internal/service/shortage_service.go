package service

import (
	"fmt"

	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/repository"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/stock"
)

// ShortageService is the single place the requirement/shortage decision
// table runs; every consumer view calls it rather than re-deriving the
// numbers. It reads one snapshot per call and hands it to the pure
// computations, so a store failure surfaces as an error instead of an
// empty-looking dataset.
type ShortageService struct {
	projectRepo   *repository.ProjectRepository
	eventRepo     *repository.StockEventRepository
	thresholdRepo *repository.ThresholdRepository
}

func NewShortageService(
	projectRepo *repository.ProjectRepository,
	eventRepo *repository.StockEventRepository,
	thresholdRepo *repository.ThresholdRepository,
) *ShortageService {
	return &ShortageService{
		projectRepo:   projectRepo,
		eventRepo:     eventRepo,
		thresholdRepo: thresholdRepo,
	}
}

// Requirements aggregates material requirements across every project.
func (s *ShortageService) Requirements() (map[entity.StockKey]*stock.RequiredAggregate, error) {
	specs, err := s.projectRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return stock.AggregateRequirements(specs), nil
}

// Classify recomputes the alert list from a fresh snapshot of all three
// stores. Results are fully derived and never cached.
func (s *ShortageService) Classify() ([]stock.ShortageRecord, error) {
	specs, err := s.projectRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	events, err := s.eventRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("load stock events: %w", err)
	}
	thresholds, err := s.thresholdRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("load thresholds: %w", err)
	}

	required := stock.AggregateRequirements(specs)
	balances := stock.ComputeBalance(events)
	return stock.Classify(required, balances, thresholds), nil
}
