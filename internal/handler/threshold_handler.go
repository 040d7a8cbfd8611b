package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/service"
)

type ThresholdHandler struct {
	svc *service.ThresholdService
}

func NewThresholdHandler(svc *service.ThresholdService) *ThresholdHandler {
	return &ThresholdHandler{svc: svc}
}

// Get GET /thresholds
func (h *ThresholdHandler) Get(c *gin.Context) {
	cfg, err := h.svc.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": cfg})
}

// Update PUT /thresholds — replaces the whole configuration.
func (h *ThresholdHandler) Update(c *gin.Context) {
	var cfg entity.ThresholdConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	if err := h.svc.Update(c.Request.Context(), cfg); err != nil {
		status := http.StatusInternalServerError
		code := 50001
		if errors.Is(err, entity.ErrThresholdOrder) {
			status = http.StatusBadRequest
			code = 10001
		}
		c.JSON(status, gin.H{"code": code, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

type upsertItemRequest struct {
	Item     string  `json:"item" binding:"required"`
	Critical float64 `json:"critical"`
	Low      float64 `json:"low"`
}

// UpsertItem PUT /thresholds/items — writes one per-item override.
func (h *ThresholdHandler) UpsertItem(c *gin.Context) {
	var req upsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	pair := entity.ThresholdPair{Critical: req.Critical, Low: req.Low}
	if err := h.svc.UpsertItem(c.Request.Context(), req.Item, pair); err != nil {
		status := http.StatusInternalServerError
		code := 50001
		if errors.Is(err, entity.ErrThresholdOrder) {
			status = http.StatusBadRequest
			code = 10001
		}
		c.JSON(status, gin.H{"code": code, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}
