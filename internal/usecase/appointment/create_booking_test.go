package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/models"
	"github.com/navalha-app/agenda-api/internal/timezone"
)

// terça-feira habilitada
const bookingDay = "2026-03-10"

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	now, err := timezone.ParseDateTime("2026-03-09", "12:00")
	require.NoError(t, err)
	return now
}

func seedRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.barbers = []models.User{
		{ID: 1, BarbershopID: 1, Name: "Rafael", Active: true},
		{ID: 2, BarbershopID: 1, Name: "Diego", Active: true},
	}
	repo.services = []models.Service{
		{ID: 10, BarbershopID: 1, Name: "Corte", DurationMin: 30, Price: 50, Active: true},
		{ID: 11, BarbershopID: 1, Name: "Barba", DurationMin: 20, Price: 30, Active: true},
		{ID: 12, BarbershopID: 1, Name: "Ritual VIP", DurationMin: 60, Price: 120, MemberOnly: true, Active: true},
	}
	return repo
}

func newBookingUC(t *testing.T, repo *fakeRepo) *CreateBooking {
	uc := NewCreateBooking(repo, nil)
	uc.now = func() time.Time { return fixedNow(t) }
	return uc
}

func TestCreateBookingSnapshotsPricesAndCoverage(t *testing.T) {
	repo := seedRepo()
	repo.customers = []models.Customer{
		{ID: 7, BarbershopID: 1, Name: "Marcos", Phone: "11999990000"},
	}
	repo.coverage[7] = map[uint]bool{10: true}

	uc := newBookingUC(t, repo)

	ap, err := uc.Execute(context.Background(), CreateBookingInput{
		BarbershopID: 1,
		CustomerID:   7,
		BarberID:     1,
		ServiceIDs:   []uint{10, 11},
		Date:         bookingDay,
		Time:         "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 50, ap.TotalDurationMin)
	assert.Equal(t, 80.0, ap.FullPrice)
	assert.Equal(t, 30.0, ap.ChargeableAmount)
	assert.Len(t, ap.Services, 2)
	assert.True(t, ap.Services[0].CoveredByPlan)
	assert.False(t, ap.Services[1].CoveredByPlan)
	assert.NotEqual(t, uuid.Nil, ap.PublicID)

	// intervalo derivado da soma das durações, armazenado em UTC
	wantStart, _ := timezone.ParseDateTime(bookingDay, "10:00")
	assert.True(t, ap.StartTime.Equal(wantStart))
	assert.True(t, ap.EndTime.Equal(wantStart.Add(50*time.Minute)))
	assert.Equal(t, time.UTC, ap.StartTime.Location())
}

func TestCreateBookingAutoAssignSkipsBusyBarber(t *testing.T) {
	repo := seedRepo()

	start, _ := timezone.ParseDateTime(bookingDay, "10:00")
	repo.appointments = []models.Appointment{
		{ID: 99, BarberID: 1, Status: "scheduled", StartTime: start.UTC(), EndTime: start.Add(30 * time.Minute).UTC()},
	}

	uc := newBookingUC(t, repo)

	ap, err := uc.Execute(context.Background(), CreateBookingInput{
		BarbershopID:  1,
		CustomerName:  "Ana",
		CustomerPhone: "11888887777",
		ServiceIDs:    []uint{10},
		Date:          bookingDay,
		Time:          "10:00",
	})
	require.NoError(t, err)

	// barbeiro 1 ocupado; o primeiro livre em ordem estável é o 2
	assert.Equal(t, uint(2), ap.BarberID)
}

func TestCreateBookingAllBusyIsSlotConflict(t *testing.T) {
	repo := seedRepo()

	start, _ := timezone.ParseDateTime(bookingDay, "10:00")
	end := start.Add(30 * time.Minute)
	repo.appointments = []models.Appointment{
		{ID: 98, BarberID: 1, Status: "scheduled", StartTime: start.UTC(), EndTime: end.UTC()},
		{ID: 99, BarberID: 2, Status: "scheduled", StartTime: start.UTC(), EndTime: end.UTC()},
	}

	uc := newBookingUC(t, repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		BarbershopID:  1,
		CustomerName:  "Ana",
		CustomerPhone: "11888887777",
		ServiceIDs:    []uint{10},
		Date:          bookingDay,
		Time:          "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
}

func TestCreateBookingStoreRaceBecomesSlotConflict(t *testing.T) {
	repo := seedRepo()
	repo.forceConflict = true

	uc := newBookingUC(t, repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		BarbershopID:  1,
		CustomerName:  "Ana",
		CustomerPhone: "11888887777",
		BarberID:      1,
		ServiceIDs:    []uint{10},
		Date:          bookingDay,
		Time:          "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
}

func TestCreateBookingNoBarbers(t *testing.T) {
	repo := seedRepo()
	repo.barbers = nil

	uc := newBookingUC(t, repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		BarbershopID:  1,
		CustomerName:  "Ana",
		CustomerPhone: "11888887777",
		ServiceIDs:    []uint{10},
		Date:          bookingDay,
		Time:          "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNoBarbersAvailable))
}

func TestCreateBookingSpecificBarberBusy(t *testing.T) {
	repo := seedRepo()

	start, _ := timezone.ParseDateTime(bookingDay, "10:00")
	repo.appointments = []models.Appointment{
		{ID: 99, BarberID: 1, Status: "scheduled", StartTime: start.UTC(), EndTime: start.Add(30 * time.Minute).UTC()},
	}

	uc := newBookingUC(t, repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		BarbershopID:  1,
		CustomerName:  "Ana",
		CustomerPhone: "11888887777",
		BarberID:      1,
		ServiceIDs:    []uint{10},
		Date:          bookingDay,
		Time:          "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBarberNotAvailable))
}

func TestCreateBookingUnknownServiceID(t *testing.T) {
	repo := seedRepo()
	uc := newBookingUC(t, repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		BarbershopID:  1,
		CustomerName:  "Ana",
		CustomerPhone: "11888887777",
		ServiceIDs:    []uint{10, 999},
		Date:          bookingDay,
		Time:          "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}

func TestCreateBookingMemberOnlyWithoutCoverage(t *testing.T) {
	repo := seedRepo()
	uc := newBookingUC(t, repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		BarbershopID:  1,
		CustomerName:  "Ana",
		CustomerPhone: "11888887777",
		ServiceIDs:    []uint{12},
		Date:          bookingDay,
		Time:          "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestCreateBookingRejectsPastStart(t *testing.T) {
	repo := seedRepo()
	uc := newBookingUC(t, repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		BarbershopID:  1,
		CustomerName:  "Ana",
		CustomerPhone: "11888887777",
		ServiceIDs:    []uint{10},
		Date:          "2026-03-08",
		Time:          "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestCreateBookingCancelledSlotIsReusable(t *testing.T) {
	repo := seedRepo()

	start, _ := timezone.ParseDateTime(bookingDay, "10:00")
	repo.appointments = []models.Appointment{
		{ID: 99, BarberID: 1, Status: "cancelled", StartTime: start.UTC(), EndTime: start.Add(30 * time.Minute).UTC()},
	}

	uc := newBookingUC(t, repo)

	ap, err := uc.Execute(context.Background(), CreateBookingInput{
		BarbershopID:  1,
		CustomerName:  "Ana",
		CustomerPhone: "11888887777",
		BarberID:      1,
		ServiceIDs:    []uint{10},
		Date:          bookingDay,
		Time:          "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), ap.BarberID)
}
