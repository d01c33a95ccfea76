package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/navalha-app/agenda-api/internal/audit"
	"github.com/navalha-app/agenda-api/internal/httperr"
	infraRepo "github.com/navalha-app/agenda-api/internal/infra/repository"
	"github.com/navalha-app/agenda-api/internal/models"
	"github.com/navalha-app/agenda-api/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler é o widget de autoatendimento: sem login, escopado pelo
// slug da barbearia. Reserva e cancelamento passam pelos mesmos use
// cases do painel.
type PublicHandler struct {
	db            *gorm.DB
	availability  *appointment.GetAvailability
	createBooking *appointment.CreateBooking
	cancelBooking *appointment.CancelBooking
}

func NewPublicHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *PublicHandler {
	repo := infraRepo.NewBookingGormRepository(db)

	return &PublicHandler{
		db:            db,
		availability:  appointment.NewGetAvailability(repo),
		createBooking: appointment.NewCreateBooking(repo, dispatcher),
		cancelBooking: appointment.NewCancelBooking(repo, dispatcher),
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`

	// BarberID opcional; zero deixa o motor escolher o primeiro livre.
	BarberID   uint   `json:"barber_id"`
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:mm
	Notes      string `json:"notes"`
}

type PublicCancelBookingRequest struct {
	CustomerID uint `json:"customer_id" binding:"required"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("barbershop_id = ? AND active = true", shop.ID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop": gin.H{
			"id":      shop.ID,
			"name":    shop.Name,
			"slug":    shop.Slug,
			"phone":   shop.Phone,
			"address": shop.Address,
		},
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY (REUSO TOTAL DO USE CASE)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")

	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Data obrigatória.")
		return
	}

	serviceIDs, err := parseServiceIDs(c.Query("service_ids"))
	if err != nil || len(serviceIDs) == 0 {
		httperr.BadRequest(c, "invalid_service_ids", "Serviços inválidos.")
		return
	}

	var barberID uint
	if raw := c.Query("barber_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
		barberID = uint(parsed)
	}

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		appointment.AvailabilityInput{
			BarbershopID: shop.ID,
			BarberID:     barberID,
			Date:         dateStr,
			ServiceIDs:   serviceIDs,
		},
	)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createBooking.Execute(
		c.Request.Context(),
		appointment.CreateBookingInput{
			BarbershopID:  shop.ID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			BarberID:      req.BarberID,
			ServiceIDs:    req.ServiceIDs,
			Date:          req.Date,
			Time:          req.Time,
			Notes:         req.Notes,
		},
	)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	// O widget só precisa do identificador público e do resumo; o ID
	// interno não sai daqui.
	c.JSON(http.StatusCreated, gin.H{
		"public_id":         ap.PublicID,
		"barber":            gin.H{"id": ap.Barber.ID, "name": ap.Barber.Name},
		"start_time":        ap.StartTime,
		"end_time":          ap.EndTime,
		"status":            ap.Status,
		"full_price":        ap.FullPrice,
		"chargeable_amount": ap.ChargeableAmount,
		"customer_id":       ap.CustomerID,
	})
}

////////////////////////////////////////////////////////
// CANCEL BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CancelBooking(c *gin.Context) {
	slug := c.Param("slug")

	publicID, err := uuid.Parse(c.Param("publicId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_public_id", "Identificador inválido.")
		return
	}

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req PublicCancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.cancelBooking.Execute(
		c.Request.Context(),
		shop.ID,
		publicID,
		req.CustomerID,
	)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"public_id":    ap.PublicID,
		"status":       ap.Status,
		"cancelled_at": ap.CancelledAt,
	})
}
