package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/middleware"
	"github.com/navalha-app/agenda-api/internal/models"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

type UpdateBarbershopConfigRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`

	OpenHour          *int    `json:"open_hour"`
	CloseHour         *int    `json:"close_hour"`
	SlotStrideMinutes *int    `json:"slot_stride_minutes"`
	EnabledWeekdays   *string `json:"enabled_weekdays"`

	CancelMinNoticeMinutes *int `json:"cancel_min_notice_minutes"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	var req UpdateBarbershopConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}

	if req.OpenHour != nil {
		shop.OpenHour = *req.OpenHour
	}
	if req.CloseHour != nil {
		shop.CloseHour = *req.CloseHour
	}
	if shop.OpenHour < 0 || shop.CloseHour > 24 || shop.OpenHour >= shop.CloseHour {
		httperr.BadRequest(c, "invalid_hours", "Horário de abertura deve ser antes do fechamento.")
		return
	}

	if req.SlotStrideMinutes != nil {
		if *req.SlotStrideMinutes <= 0 {
			httperr.BadRequest(c, "invalid_stride", "O passo dos horários deve ser positivo (em minutos).")
			return
		}
		shop.SlotStrideMinutes = *req.SlotStrideMinutes
	}

	if req.EnabledWeekdays != nil {
		if !validWeekdayList(*req.EnabledWeekdays) {
			httperr.BadRequest(c, "invalid_weekdays", "Dias da semana devem ser números de 0 (domingo) a 6 (sábado).")
			return
		}
		shop.EnabledWeekdays = *req.EnabledWeekdays
	}

	if req.CancelMinNoticeMinutes != nil {
		if *req.CancelMinNoticeMinutes < 0 {
			httperr.BadRequest(c, "invalid_cancel_notice", "Antecedência mínima deve ser zero ou positiva (em minutos).")
			return
		}
		shop.CancelMinNoticeMinutes = *req.CancelMinNoticeMinutes
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar as configurações da barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

// validWeekdayList aceita "1,2,3" ou vazio (nenhum dia habilitado).
func validWeekdayList(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			return false
		}
	}
	return true
}
