package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/navalha-app/agenda-api/internal/audit"
	domain "github.com/navalha-app/agenda-api/internal/domain/appointment"
	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/models"
	"github.com/navalha-app/agenda-api/internal/timezone"
)

// CancelBooking é o cancelamento iniciado pelo cliente, sujeito à
// antecedência mínima da barbearia. O cancelamento do painel (sem janela)
// fica em CancelAppointment.
type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	barbershopID uint,
	publicID uuid.UUID,
	customerID uint,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentByPublicID(ctx, shop.ID, publicID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if err := domain.CustomerCancel(ap, customerID, uc.now(), shop.CancelMinNoticeMinutes); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: shop.ID,
			Action:       "appointment_cancelled_by_customer",
			Entity:       "appointment",
			EntityID:     &ap.ID,
		})
	}

	return ap, nil
}
