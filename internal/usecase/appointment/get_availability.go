package appointment

import (
	"context"
	"time"

	domain "github.com/navalha-app/agenda-api/internal/domain/appointment"
	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/models"
	"github.com/navalha-app/agenda-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type AvailabilityInput struct {
	BarbershopID uint

	// BarberID zero = qualquer barbeiro ativo; basta um livre para o
	// horário aparecer.
	BarberID uint

	Date string // YYYY-MM-DD, local

	// ServiceIDs define a duração pedida (soma das durações). DurationMin
	// é aceito no lugar quando o chamador já sabe o total.
	ServiceIDs  []uint
	DurationMin int
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		now:  timezone.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	duration := in.DurationMin
	if len(in.ServiceIDs) > 0 {
		services, err := uc.repo.GetServices(ctx, shop.ID, in.ServiceIDs)
		if err != nil {
			return nil, err
		}
		if len(services) != len(in.ServiceIDs) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		duration = 0
		for _, svc := range services {
			duration += svc.DurationMin
		}
	}
	if duration <= 0 {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// A leitura é delimitada pela janela da barbearia; dia desabilitado
	// não tem slot nenhum.
	if !domain.ShopOpenOnWeekday(shop, timezone.Weekday(day)) {
		return nil, httperr.ErrBusiness(httperr.CodeDayNotAvailable)
	}

	var barbers []models.User
	if in.BarberID != 0 {
		barber, err := uc.repo.GetActiveBarber(ctx, shop.ID, in.BarberID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeBarberNotAvailable)
		}
		barbers = []models.User{*barber}
	} else {
		barbers, err = uc.repo.ListActiveBarbers(ctx, shop.ID)
		if err != nil {
			return nil, err
		}
		if len(barbers) == 0 {
			return nil, httperr.ErrBusiness(httperr.CodeNoBarbersAvailable)
		}
	}

	// Janela com folga no fim para candidatos cujo término passa da
	// meia-noite; o que importa é interseção, não contenção.
	windowStart := day
	windowEnd := day.Add(24*time.Hour + time.Duration(duration)*time.Minute)

	days := make([]domain.BarberDay, 0, len(barbers))
	for _, barber := range barbers {
		schedules, err := uc.repo.ListSchedules(ctx, barber.ID)
		if err != nil {
			return nil, err
		}
		blocks, err := uc.repo.ListBlocksInRange(ctx, barber.ID, windowStart, windowEnd)
		if err != nil {
			return nil, err
		}
		existing, err := uc.repo.ListAppointmentsInRange(ctx, barber.ID, windowStart, windowEnd)
		if err != nil {
			return nil, err
		}

		days = append(days, domain.BarberDay{
			Barber:       barber,
			Schedules:    schedules,
			Blocks:       blocks,
			Appointments: existing,
		})
	}

	return domain.GenerateSlots(domain.SlotRequest{
		Shop:        shop,
		Day:         day,
		DurationMin: duration,
		Now:         uc.now(),
	}, days), nil
}
