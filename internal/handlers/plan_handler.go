package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-app/agenda-api/internal/middleware"
	"github.com/navalha-app/agenda-api/internal/models"
)

// PlanHandler administra os planos de assinatura e as assinaturas dos
// clientes. A cobertura só é consultada pelo motor de agenda na hora da
// reserva; mudar um plano não reprecifica agendamentos passados.
type PlanHandler struct {
	db *gorm.DB
}

func NewPlanHandler(db *gorm.DB) *PlanHandler {
	return &PlanHandler{db: db}
}

// --------- Requests ---------

type CreatePlanRequest struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
	ServiceIDs []uint  `json:"service_ids" binding:"required,min=1"`
}

type SubscribeRequest struct {
	CustomerID uint `json:"customer_id" binding:"required"`
	// Duração da assinatura em dias; padrão 30.
	DurationDays int `json:"duration_days"`
}

// --------- Handlers ---------

func (h *PlanHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var plans []models.MembershipPlan
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("id ASC").
		Find(&plans).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Todos os serviços precisam existir na barbearia antes de criar o
	// plano; criação do plano e dos vínculos é atômica.
	var count int64
	h.db.Model(&models.Service{}).
		Where("id IN ? AND barbershop_id = ?", req.ServiceIDs, barbershopID).
		Count(&count)
	if count != int64(len(req.ServiceIDs)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_not_found"})
		return
	}

	plan := models.MembershipPlan{
		BarbershopID: barbershopID,
		Name:         req.Name,
		Price:        req.Price,
		Active:       true,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}

		links := make([]models.PlanService, 0, len(req.ServiceIDs))
		for _, sid := range req.ServiceIDs {
			links = append(links, models.PlanService{
				PlanID:    plan.ID,
				ServiceID: sid,
			})
		}

		return tx.Create(&links).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) Subscribe(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	planID := c.Param("id")

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var plan models.MembershipPlan
	if err := h.db.
		Where("id = ? AND barbershop_id = ? AND active = true", planID, barbershopID).
		First(&plan).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "plan_not_found"})
		return
	}

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", req.CustomerID, barbershopID).
		First(&customer).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "customer_not_found"})
		return
	}

	days := req.DurationDays
	if days <= 0 {
		days = 30
	}

	sub := models.CustomerPlan{
		CustomerID: customer.ID,
		PlanID:     plan.ID,
		ExpiresAt:  time.Now().AddDate(0, 0, days),
		Active:     true,
	}

	if err := h.db.Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_subscribe"})
		return
	}

	c.JSON(http.StatusCreated, sub)
}
