package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/repository"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/service"
)

type StockHandler struct {
	svc *service.StockService
}

func NewStockHandler(svc *service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// RecordEvent POST /stock/events
func (h *StockHandler) RecordEvent(c *gin.Context) {
	var req service.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	event, err := h.svc.RecordEvent(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": event})
}

// ListEvents GET /stock/events
func (h *StockHandler) ListEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.StockEventListParams{
		Item:      c.Query("item"),
		Brand:     c.Query("brand"),
		Direction: c.Query("direction"),
		Page:      page,
		Size:      size,
	}
	events, total, err := h.svc.ListEvents(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": events, "total": total, "page": page, "size": size}})
}

// DeleteEvent DELETE /stock/events/:id
func (h *StockHandler) DeleteEvent(c *gin.Context) {
	if err := h.svc.DeleteEvent(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// Balances GET /stock/balances
func (h *StockHandler) Balances(c *gin.Context) {
	balances, err := h.svc.Balances()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	// map keys flatten into rows for the dashboard table
	type row struct {
		Item     string  `json:"item"`
		Type     string  `json:"type"`
		Brand    string  `json:"brand"`
		Quantity float64 `json:"quantity"`
	}
	rows := make([]row, 0, len(balances))
	for key, qty := range balances {
		rows = append(rows, row{Item: key.Item, Type: key.Type, Brand: key.Brand, Quantity: qty})
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": rows})
}
