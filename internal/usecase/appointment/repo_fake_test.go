package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/navalha-app/agenda-api/internal/domain/appointment"
	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/models"
)

// fakeRepo guarda tudo em memória e reproduz os contratos do repositório
// real, incluindo a tradução de corrida perdida em slot_conflict.
type fakeRepo struct {
	shop     *models.Barbershop
	barbers  []models.User
	services []models.Service

	schedules    map[uint][]models.WeeklySchedule
	blocks       map[uint][]models.UnavailabilityBlock
	appointments []models.Appointment

	customers []models.Customer
	coverage  map[uint]map[uint]bool

	// forceConflict simula outra transação vencendo a corrida no banco
	forceConflict bool

	created *models.Appointment
	updated *models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shop: &models.Barbershop{
			ID:                     1,
			Slug:                   "navalha-centro",
			OpenHour:               8,
			CloseHour:              20,
			SlotStrideMinutes:      30,
			EnabledWeekdays:        "1,2,3,4,5,6",
			CancelMinNoticeMinutes: 120,
		},
		schedules: map[uint][]models.WeeklySchedule{},
		blocks:    map[uint][]models.UnavailabilityBlock{},
		coverage:  map[uint]map[uint]bool{},
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if f.shop == nil || f.shop.ID != id {
		return nil, errors.New("barbershop not found")
	}
	return f.shop, nil
}

func (f *fakeRepo) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	if f.shop == nil || f.shop.Slug != slug {
		return nil, errors.New("barbershop not found")
	}
	return f.shop, nil
}

func (f *fakeRepo) GetActiveBarber(_ context.Context, barbershopID, barberID uint) (*models.User, error) {
	for i := range f.barbers {
		b := &f.barbers[i]
		if b.ID == barberID && b.BarbershopID == barbershopID && b.Active {
			return b, nil
		}
	}
	return nil, errors.New("barber not found")
}

func (f *fakeRepo) ListActiveBarbers(_ context.Context, barbershopID uint) ([]models.User, error) {
	out := make([]models.User, 0, len(f.barbers))
	for _, b := range f.barbers {
		if b.BarbershopID == barbershopID && b.Active {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListSchedules(_ context.Context, barberID uint) ([]models.WeeklySchedule, error) {
	return f.schedules[barberID], nil
}

func (f *fakeRepo) ListBlocksInRange(_ context.Context, barberID uint, start, end time.Time) ([]models.UnavailabilityBlock, error) {
	var out []models.UnavailabilityBlock
	for _, b := range f.blocks[barberID] {
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetServices(_ context.Context, barbershopID uint, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		for _, svc := range f.services {
			if svc.ID == id && svc.BarbershopID == barbershopID && svc.Active {
				out = append(out, svc)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) GetMembershipCoverage(_ context.Context, customerID uint, _ time.Time) (map[uint]bool, error) {
	if m, ok := f.coverage[customerID]; ok {
		return m, nil
	}
	return map[uint]bool{}, nil
}

func (f *fakeRepo) GetCustomer(_ context.Context, barbershopID, customerID uint) (*models.Customer, error) {
	for i := range f.customers {
		c := &f.customers[i]
		if c.ID == customerID && c.BarbershopID == barbershopID {
			return c, nil
		}
	}
	return nil, errors.New("customer not found")
}

func (f *fakeRepo) GetOrCreateCustomer(_ context.Context, barbershopID uint, name, phone, email string) (*models.Customer, error) {
	for i := range f.customers {
		c := &f.customers[i]
		if c.BarbershopID == barbershopID && c.Phone == phone {
			return c, nil
		}
	}
	c := models.Customer{
		ID:           uint(len(f.customers) + 1),
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}
	f.customers = append(f.customers, c)
	return &f.customers[len(f.customers)-1], nil
}

func (f *fakeRepo) ListAppointmentsInRange(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || ap.Status == "cancelled" {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.forceConflict {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	ap.ID = uint(len(f.appointments) + 1)
	f.appointments = append(f.appointments, *ap)
	f.created = ap
	return nil
}

func (f *fakeRepo) GetAppointmentByPublicID(_ context.Context, barbershopID uint, publicID uuid.UUID) (*models.Appointment, error) {
	for i := range f.appointments {
		ap := &f.appointments[i]
		if ap.BarbershopID == barbershopID && ap.PublicID == publicID {
			return ap, nil
		}
	}
	return nil, errors.New("appointment not found")
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		ap := &f.appointments[i]
		if ap.ID == appointmentID && ap.BarberID == barberID {
			return ap, nil
		}
	}
	return nil, errors.New("appointment not found")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
		}
	}
	f.updated = ap
	return nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}
