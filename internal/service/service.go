package service

import (
	"github.com/kd-lxdia/RockrSolar-sub000/internal/config"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/repository"
	"github.com/redis/go-redis/v9"
)

// Services is the service collection handed to the HTTP layer.
type Services struct {
	Auth      *AuthService
	BOM       *BOMService
	Stock     *StockService
	Threshold *ThresholdService
	Shortage  *ShortageService
}

func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	thresholdSvc := NewThresholdService(repos.Threshold, rdb)
	return &Services{
		Auth:      NewAuthService(cfg),
		BOM:       NewBOMService(repos.Project),
		Stock:     NewStockService(repos.StockEvent),
		Threshold: thresholdSvc,
		Shortage:  NewShortageService(repos.Project, repos.StockEvent, repos.Threshold),
	}
}
