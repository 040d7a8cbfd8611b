package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/service"
)

type ShortageHandler struct {
	svc *service.ShortageService
}

func NewShortageHandler(svc *service.ShortageService) *ShortageHandler {
	return &ShortageHandler{svc: svc}
}

// List GET /shortages — recomputed from a fresh snapshot on every call.
func (h *ShortageHandler) List(c *gin.Context) {
	records, err := h.svc.Classify()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": records})
}

// Requirements GET /requirements — aggregated totals per stock key.
func (h *ShortageHandler) Requirements(c *gin.Context) {
	required, err := h.svc.Requirements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	type row struct {
		Item      string   `json:"item"`
		Type      string   `json:"type"`
		Brand     string   `json:"brand"`
		Quantity  float64  `json:"quantity"`
		Consumers []string `json:"consumers"`
	}
	rows := make([]row, 0, len(required))
	for key, agg := range required {
		rows = append(rows, row{
			Item:      key.Item,
			Type:      key.Type,
			Brand:     key.Brand,
			Quantity:  agg.Quantity,
			Consumers: agg.Consumers,
		})
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": rows})
}
