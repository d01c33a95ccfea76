package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/navalha-app/agenda-api/internal/domain/appointment"
	"github.com/navalha-app/agenda-api/internal/middleware"
	"github.com/navalha-app/agenda-api/internal/models"
)

// WorkingHoursHandler gerencia a agenda semanal própria do barbeiro.
// A atualização substitui o conjunto inteiro: a partir da primeira linha
// enviada, dias sem linha ficam fechados para esse barbeiro. Enviar lista
// vazia apaga tudo e devolve o barbeiro ao horário da barbearia.
type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days"`
}

// targetBarber resolve em quem a operação atua: o próprio usuário, ou
// outro barbeiro da mesma barbearia quando o dono passa ?barber_id=.
func (h *WorkingHoursHandler) targetBarber(c *gin.Context) (uint, bool) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	raw := c.Query("barber_id")
	if raw == "" {
		return barberID, true
	}

	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_barber_id"})
		return 0, false
	}

	if c.MustGet(middleware.ContextUserRole).(string) != "owner" {
		c.JSON(http.StatusForbidden, gin.H{"error": "owner_only"})
		return 0, false
	}

	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var target models.User
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", parsed, barbershopID).
		First(&target).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return 0, false
	}

	return target.ID, true
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID, ok := h.targetBarber(c)
	if !ok {
		return
	}

	var rows []models.WeeklySchedule
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barberID, ok := h.targetBarber(c)
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := make(map[int]bool, len(req.Days))
	for _, d := range req.Days {
		if seen[d.Weekday] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_weekday"})
			return
		}
		seen[d.Weekday] = true

		startMin, err := domain.ParseHM(d.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_time"})
			return
		}
		endMin, err := domain.ParseHM(d.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_time"})
			return
		}
		if startMin >= endMin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_after_end"})
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.WeeklySchedule{}).Error; err != nil {
			return err
		}

		if len(req.Days) == 0 {
			return nil
		}

		rows := make([]models.WeeklySchedule, 0, len(req.Days))
		for _, d := range req.Days {
			rows = append(rows, models.WeeklySchedule{
				BarberID:  barberID,
				Weekday:   d.Weekday,
				StartTime: d.StartTime,
				EndTime:   d.EndTime,
			})
		}

		return tx.Create(&rows).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
