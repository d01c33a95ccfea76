package appointment

import (
	"testing"
	"time"

	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/models"
)

func scheduled(customerID uint, start time.Time) *models.Appointment {
	return &models.Appointment{
		ID:         1,
		CustomerID: customerID,
		StartTime:  start,
		Status:     string(StatusScheduled),
	}
}

func TestCustomerCancelWithEnoughNotice(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	ap := scheduled(7, now.Add(2*time.Hour+time.Minute))

	if err := CustomerCancel(ap, 7, now, 120); err != nil {
		t.Fatalf("expected cancel to succeed, got %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Fatalf("expected cancelled status, got %s", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("expected CancelledAt = now")
	}
}

func TestCustomerCancelTooLate(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	// 1h59 de antecedência: bloqueado
	ap := scheduled(7, now.Add(119*time.Minute))
	err := CustomerCancel(ap, 7, now, 120)
	if !httperr.IsBusiness(err, httperr.CodeCancelTooLate) {
		t.Fatalf("expected cancel_too_late, got %v", err)
	}

	// exatamente 2h: o corte é estrito, ainda bloqueado
	ap = scheduled(7, now.Add(120*time.Minute))
	err = CustomerCancel(ap, 7, now, 120)
	if !httperr.IsBusiness(err, httperr.CodeCancelTooLate) {
		t.Fatalf("expected cancel_too_late at exact cutoff, got %v", err)
	}
}

func TestCustomerCancelWrongCustomer(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	ap := scheduled(7, now.Add(5*time.Hour))

	err := CustomerCancel(ap, 8, now, 120)
	if !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error for another customer, got %v", err)
	}
	if ap.Status != string(StatusScheduled) {
		t.Fatalf("appointment must stay untouched")
	}
}

func TestCustomerCancelAlreadyCancelled(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	ap := scheduled(7, now.Add(5*time.Hour))
	ap.Status = string(StatusCancelled)

	err := CustomerCancel(ap, 7, now, 120)
	if !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error for already cancelled, got %v", err)
	}
}

func TestCustomerCancelDefaultNotice(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	ap := scheduled(7, now.Add(90*time.Minute))

	// minNoticeMinutes zerado cai no padrão de 120
	err := CustomerCancel(ap, 7, now, 0)
	if !httperr.IsBusiness(err, httperr.CodeCancelTooLate) {
		t.Fatalf("expected default notice of 120 minutes, got %v", err)
	}
}

func TestStaffTransitionsRequireScheduled(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	ap := scheduled(7, now.Add(time.Hour))
	if err := Complete(ap, now); err != nil {
		t.Fatalf("expected complete to succeed, got %v", err)
	}
	if ap.CompletedAt == nil {
		t.Fatalf("expected CompletedAt set")
	}

	if err := Cancel(ap, now); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error cancelling a completed appointment, got %v", err)
	}
	if err := MarkNoShow(ap, now); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error marking no-show on completed, got %v", err)
	}
}

func TestOccupies(t *testing.T) {
	if Occupies(StatusCancelled) {
		t.Fatalf("cancelled must not occupy")
	}
	for _, s := range []Status{StatusScheduled, StatusCompleted, StatusNoShow} {
		if !Occupies(s) {
			t.Fatalf("%s must occupy", s)
		}
	}
}
