package entity

import (
	"errors"
	"time"
)

// ErrThresholdOrder is returned when a threshold pair violates the
// critical < low invariant. The write boundary rejects it; it is never
// silently corrected.
var ErrThresholdOrder = errors.New("critical threshold must be strictly less than low threshold")

// ThresholdPair is a {critical, low} alert boundary pair.
type ThresholdPair struct {
	Critical float64 `json:"critical"`
	Low      float64 `json:"low"`
}

func (p ThresholdPair) Validate() error {
	if p.Critical >= p.Low {
		return ErrThresholdOrder
	}
	return nil
}

// ThresholdConfig is the alert configuration consumed by the shortage
// classifier: a global default pair plus per-item overrides keyed by item
// name. It is a plain value; callers pass a snapshot into each classify run.
type ThresholdConfig struct {
	Global    ThresholdPair            `json:"global"`
	Overrides map[string]ThresholdPair `json:"overrides,omitempty"`
}

// ForItem returns the override pair for the item if present, else the global
// default.
func (c ThresholdConfig) ForItem(item string) ThresholdPair {
	if p, ok := c.Overrides[item]; ok {
		return p
	}
	return c.Global
}

// Validate checks the ordering invariant on the global pair and every
// override.
func (c ThresholdConfig) Validate() error {
	if err := c.Global.Validate(); err != nil {
		return err
	}
	for _, p := range c.Overrides {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ThresholdSetting is the persisted form of one threshold pair. The row with
// an empty item name holds the global default.
type ThresholdSetting struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Item      string    `json:"item" gorm:"size:128;uniqueIndex"`
	Critical  float64   `json:"critical" gorm:"type:decimal(12,4);not null"`
	Low       float64   `json:"low" gorm:"type:decimal(12,4);not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ThresholdSetting) TableName() string {
	return "threshold_settings"
}

func (s ThresholdSetting) Pair() ThresholdPair {
	return ThresholdPair{Critical: s.Critical, Low: s.Low}
}
