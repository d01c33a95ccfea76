package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-app/agenda-api/internal/middleware"
	"github.com/navalha-app/agenda-api/internal/models"
	"github.com/navalha-app/agenda-api/internal/timezone"
)

// BlocksHandler gerencia os bloqueios de agenda do barbeiro (folgas,
// compromissos). Datas e horas chegam no fuso local e são gravadas em UTC.
type BlocksHandler struct {
	db *gorm.DB
}

func NewBlocksHandler(db *gorm.DB) *BlocksHandler {
	return &BlocksHandler{db: db}
}

type CreateBlockRequest struct {
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time" binding:"required"`   // HH:MM
	Reason    string `json:"reason"`
}

func (h *BlocksHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Where("barber_id = ?", barberID)

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := timezone.ParseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
			return
		}
		q = q.Where("start_time < ? AND end_time > ?", day.AddDate(0, 0, 1), day)
	}

	var blocks []models.UnavailabilityBlock
	if err := q.
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_blocks"})
		return
	}

	c.JSON(http.StatusOK, blocks)
}

func (h *BlocksHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	start, err := timezone.ParseDateTime(req.Date, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_time"})
		return
	}
	end, err := timezone.ParseDateTime(req.Date, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_time"})
		return
	}
	if !start.Before(end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_after_end"})
		return
	}

	block := models.UnavailabilityBlock{
		BarberID:  barberID,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
		Reason:    req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_block"})
		return
	}

	c.JSON(http.StatusCreated, block)
}

func (h *BlocksHandler) Delete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		Delete(&models.UnavailabilityBlock{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_block"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "block_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
