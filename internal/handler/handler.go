package handler

import "github.com/kd-lxdia/RockrSolar-sub000/internal/service"

// Handlers is the HTTP handler collection registered by the router.
type Handlers struct {
	Auth      *AuthHandler
	Project   *ProjectHandler
	Stock     *StockHandler
	Threshold *ThresholdHandler
	Shortage  *ShortageHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(services.Auth),
		Project:   NewProjectHandler(services.BOM),
		Stock:     NewStockHandler(services.Stock),
		Threshold: NewThresholdHandler(services.Threshold),
		Shortage:  NewShortageHandler(services.Shortage),
	}
}
