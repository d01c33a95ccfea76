package appointment

import (
	"time"

	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/models"
)

// ===============================
// Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusScheduled
}

// Occupies informa se um agendamento neste status ainda segura o horário.
// Só o cancelamento libera o slot; completed e no_show continuam ocupando
// o intervalo histórico.
func Occupies(s Status) bool {
	return s != StatusCancelled
}

// ===============================
// Transições (painel do barbeiro)
// ===============================

func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusNoShow)
	return nil
}

// ===============================
// Política de cancelamento do cliente
// ===============================

const DefaultCancelNoticeMinutes = 120

// CustomerCancel aplica a política de cancelamento do autoatendimento:
// só o próprio cliente, nunca um agendamento já cancelado, e somente
// enquanto o início estiver além da antecedência mínima. Corte único e
// duro, sem faixas de tolerância.
func CustomerCancel(ap *models.Appointment, customerID uint, now time.Time, minNoticeMinutes int) error {
	if ap.CustomerID != customerID {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	if Status(ap.Status) == StatusCancelled {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	if minNoticeMinutes <= 0 {
		minNoticeMinutes = DefaultCancelNoticeMinutes
	}
	cutoff := now.Add(time.Duration(minNoticeMinutes) * time.Minute)
	if !ap.StartTime.After(cutoff) {
		return httperr.ErrBusiness(httperr.CodeCancelTooLate)
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
