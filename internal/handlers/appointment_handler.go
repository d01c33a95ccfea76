package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-app/agenda-api/internal/audit"
	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/httpresp"
	infraRepo "github.com/navalha-app/agenda-api/internal/infra/repository"
	"github.com/navalha-app/agenda-api/internal/middleware"
	"github.com/navalha-app/agenda-api/internal/timezone"
	"github.com/navalha-app/agenda-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler é a agenda do painel: o barbeiro autenticado
// consulta horários, cria reservas em nome do cliente e registra o
// desfecho de cada atendimento.
type AppointmentHandler struct {
	availability  *appointment.GetAvailability
	createBooking *appointment.CreateBooking
	listByDate    *appointment.ListAppointmentsByDate
	listByMonth   *appointment.ListAppointmentsByMonth
	cancel        *appointment.CancelAppointment
	complete      *appointment.CompleteAppointment
	noShow        *appointment.MarkNoShow
}

func NewAppointmentHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *AppointmentHandler {
	repo := infraRepo.NewBookingGormRepository(db)

	return &AppointmentHandler{
		availability:  appointment.NewGetAvailability(repo),
		createBooking: appointment.NewCreateBooking(repo, dispatcher),
		listByDate:    appointment.NewListAppointmentsByDate(repo),
		listByMonth:   appointment.NewListAppointmentsByMonth(repo),
		cancel:        appointment.NewCancelAppointment(repo, dispatcher),
		complete:      appointment.NewCompleteAppointment(repo, dispatcher),
		noShow:        appointment.NewMarkNoShow(repo, dispatcher),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID    uint   `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	// BarberID opcional; zero agenda com o próprio barbeiro autenticado.
	BarberID   uint   `json:"barber_id"`
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Notes      string `json:"notes"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	serviceIDs, err := parseServiceIDs(c.Query("service_ids"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_ids", "Serviços inválidos.")
		return
	}

	// duration_min como alternativa quando o painel já somou as durações
	durationMin := 0
	if raw := c.Query("duration_min"); raw != "" {
		durationMin, err = strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
			return
		}
	}

	// barber_id=0 consulta a barbearia inteira
	target := barberID
	if raw := c.Query("barber_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
		target = uint(parsed)
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		appointment.AvailabilityInput{
			BarbershopID: barbershopID,
			BarberID:     target,
			Date:         dateStr,
			ServiceIDs:   serviceIDs,
			DurationMin:  durationMin,
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

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	target := req.BarberID
	if target == 0 {
		target = barberID
	}

	ap, err := h.createBooking.Execute(
		c.Request.Context(),
		appointment.CreateBookingInput{
			BarbershopID:  barbershopID,
			CustomerID:    req.CustomerID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			BarberID:      target,
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

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	items, err := h.listByMonth.Execute(c.Request.Context(), barberID, year, month)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": items,
	})
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	appointmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), barbershopID, barberID, appointmentID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	appointmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), barbershopID, barberID, appointmentID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	appointmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), barbershopID, barberID, appointmentID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(n), true
}

func parseServiceIDs(raw string) ([]uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(n))
	}
	return ids, nil
}
