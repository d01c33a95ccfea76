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

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarbershopID uint

	// CustomerID preenchido quando a identidade já foi resolvida (painel
	// ou agente conversacional); zero = get-or-create pelos dados abaixo.
	CustomerID    uint
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	// BarberID zero = primeiro barbeiro livre, em ordem estável.
	BarberID uint

	ServiceIDs []uint

	Date  string // YYYY-MM-DD, local
	Time  string // HH:MM, local
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

// Execute revalida tudo o que o gerador de slots validou na leitura — o
// tempo passou, outra reserva pode ter entrado — e só então persiste.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	start, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	now := uc.now()
	if !start.After(now) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// --------------------------------------------------
	// Cliente
	// --------------------------------------------------
	var customer *models.Customer
	if in.CustomerID != 0 {
		customer, err = uc.repo.GetCustomer(ctx, shop.ID, in.CustomerID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeValidation)
		}
	} else {
		if in.CustomerName == "" || in.CustomerPhone == "" {
			return nil, httperr.ErrBusiness(httperr.CodeValidation)
		}
		customer, err = uc.repo.GetOrCreateCustomer(
			ctx,
			shop.ID,
			in.CustomerName,
			in.CustomerPhone,
			in.CustomerEmail,
		)
		if err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Cobertura do plano (vazia para não assinante ou plano vencido)
	// --------------------------------------------------
	covered, err := uc.repo.GetMembershipCoverage(ctx, customer.ID, now)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Serviços: fotografia de nome/duração/preço
	// --------------------------------------------------
	services, err := uc.repo.GetServices(ctx, shop.ID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	for _, svc := range services {
		if svc.MemberOnly && !covered[svc.ID] {
			return nil, httperr.ErrBusiness(httperr.CodeValidation)
		}
	}

	lines, totals := domain.BuildServiceLines(services, covered)
	end := start.Add(time.Duration(totals.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Barbeiro: revalidação ou atribuição automática
	// --------------------------------------------------
	barber, err := uc.resolveBarber(ctx, shop, in.BarberID, start, end)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Persistência atômica (agendamento + linhas)
	// --------------------------------------------------
	ap := &models.Appointment{
		PublicID:         uuid.New(),
		BarbershopID:     shop.ID,
		BarberID:         barber.ID,
		CustomerID:       customer.ID,
		StartTime:        start.UTC(),
		EndTime:          end.UTC(),
		Status:           string(domain.InitialStatus()),
		TotalDurationMin: totals.DurationMin,
		FullPrice:        totals.FullPrice,
		ChargeableAmount: totals.ChargeableAmount,
		Notes:            in.Notes,
		Services:         lines,
	}

	// Quem decide a corrida é a constraint de exclusão do banco; o
	// repositório traduz a violação em slot_conflict.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	ap.Barber = *barber
	ap.Customer = *customer

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: shop.ID,
			UserID:       nil,
			Action:       "appointment_created",
			Entity:       "appointment",
			EntityID:     &ap.ID,
		})
	}

	return ap, nil
}

func (uc *CreateBooking) resolveBarber(
	ctx context.Context,
	shop *models.Barbershop,
	barberID uint,
	start time.Time,
	end time.Time,
) (*models.User, error) {

	if barberID != 0 {
		barber, err := uc.repo.GetActiveBarber(ctx, shop.ID, barberID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeBarberNotAvailable)
		}
		free, err := uc.barberFree(ctx, shop, barber.ID, start, end)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, httperr.ErrBusiness(httperr.CodeBarberNotAvailable)
		}
		return barber, nil
	}

	barbers, err := uc.repo.ListActiveBarbers(ctx, shop.ID)
	if err != nil {
		return nil, err
	}
	if len(barbers) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeNoBarbersAvailable)
	}

	for i := range barbers {
		free, err := uc.barberFree(ctx, shop, barbers[i].ID, start, end)
		if err != nil {
			return nil, err
		}
		if free {
			return &barbers[i], nil
		}
	}

	return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
}

// barberFree é a mesma régua do gerador de slots, aplicada ao intervalo
// exato pedido.
func (uc *CreateBooking) barberFree(
	ctx context.Context,
	shop *models.Barbershop,
	barberID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	schedules, err := uc.repo.ListSchedules(ctx, barberID)
	if err != nil {
		return false, err
	}
	blocks, err := uc.repo.ListBlocksInRange(ctx, barberID, start, end)
	if err != nil {
		return false, err
	}
	existing, err := uc.repo.ListAppointmentsInRange(ctx, barberID, start, end)
	if err != nil {
		return false, err
	}

	startMin := timezone.MinuteOfDay(start)
	endMin := startMin + int(end.Sub(start)/time.Minute)

	day := domain.BarberDay{
		Schedules:    schedules,
		Blocks:       blocks,
		Appointments: existing,
	}

	return domain.BarberFree(shop, day, timezone.Weekday(start), startMin, endMin, start, end), nil
}
