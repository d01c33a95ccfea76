package appointment

import (
	"context"

	"github.com/navalha-app/agenda-api/internal/audit"
	domain "github.com/navalha-app/agenda-api/internal/domain/appointment"
	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/models"
	"github.com/navalha-app/agenda-api/internal/timezone"
)

// MarkNoShow registra que o cliente não apareceu. O intervalo continua
// ocupado no histórico; só cancelamento libera o horário.
type MarkNoShow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{
		repo:  repo,
		audit: audit,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if err := domain.MarkNoShow(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: barbershopID,
			UserID:       &barberID,
			Action:       "appointment_no_show",
			Entity:       "appointment",
			EntityID:     &ap.ID,
		})
	}

	return ap, nil
}
