package appointment

import (
	"context"

	"github.com/navalha-app/agenda-api/internal/audit"
	domain "github.com/navalha-app/agenda-api/internal/domain/appointment"
	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/models"
	"github.com/navalha-app/agenda-api/internal/timezone"
)

// CancelAppointment é o cancelamento feito pelo barbeiro no painel; não há
// janela de antecedência, só a exigência de o agendamento estar agendado.
type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: barbershopID,
			UserID:       &barberID,
			Action:       "appointment_cancelled",
			Entity:       "appointment",
			EntityID:     &ap.ID,
		})
	}

	return ap, nil
}
