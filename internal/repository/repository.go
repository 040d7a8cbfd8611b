package repository

import "gorm.io/gorm"

// Repositories is the store collection handed to the service layer.
type Repositories struct {
	Project    *ProjectRepository
	StockEvent *StockEventRepository
	Threshold  *ThresholdRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Project:    NewProjectRepository(db),
		StockEvent: NewStockEventRepository(db),
		Threshold:  NewThresholdRepository(db),
	}
}
