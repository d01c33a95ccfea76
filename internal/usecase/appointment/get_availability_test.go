package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/models"
	"github.com/navalha-app/agenda-api/internal/timezone"
)

func newAvailabilityUC(t *testing.T, repo *fakeRepo) *GetAvailability {
	uc := NewGetAvailability(repo)
	uc.now = func() time.Time { return fixedNow(t) }
	return uc
}

func TestGetAvailabilityHappyPath(t *testing.T) {
	repo := seedRepo()

	start, _ := timezone.ParseDateTime(bookingDay, "10:00")
	repo.appointments = []models.Appointment{
		{ID: 1, BarberID: 1, Status: "scheduled", StartTime: start.UTC(), EndTime: start.Add(30 * time.Minute).UTC()},
		{ID: 2, BarberID: 2, Status: "scheduled", StartTime: start.UTC(), EndTime: start.Add(30 * time.Minute).UTC()},
	}

	uc := newAvailabilityUC(t, repo)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		Date:         bookingDay,
		ServiceIDs:   []uint{10},
	})
	require.NoError(t, err)

	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "10:30")
	assert.Equal(t, "08:00", slots[0])
}

func TestGetAvailabilityDisabledWeekday(t *testing.T) {
	repo := seedRepo()
	uc := newAvailabilityUC(t, repo)

	// 2026-03-08 é domingo, fora de "1,2,3,4,5,6"
	_, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		Date:         "2026-03-08",
		ServiceIDs:   []uint{10},
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDayNotAvailable))
}

func TestGetAvailabilityDurationFromServices(t *testing.T) {
	repo := seedRepo()
	uc := newAvailabilityUC(t, repo)

	// Corte (30) + Barba (20) = 50 min; o último candidato viável deve
	// terminar até as 20:00
	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		Date:         bookingDay,
		ServiceIDs:   []uint{10, 11},
	})
	require.NoError(t, err)

	assert.Contains(t, slots, "19:00")
	assert.NotContains(t, slots, "19:30")
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	repo := seedRepo()
	uc := newAvailabilityUC(t, repo)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		Date:         bookingDay,
		ServiceIDs:   []uint{999},
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	repo := seedRepo()
	uc := newAvailabilityUC(t, repo)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		Date:         "10-03-2026",
		ServiceIDs:   []uint{10},
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestGetAvailabilityMissingDuration(t *testing.T) {
	repo := seedRepo()
	uc := newAvailabilityUC(t, repo)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		Date:         bookingDay,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestGetAvailabilityNoBarbers(t *testing.T) {
	repo := seedRepo()
	repo.barbers = nil
	uc := newAvailabilityUC(t, repo)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		Date:         bookingDay,
		ServiceIDs:   []uint{10},
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNoBarbersAvailable))
}

func TestGetAvailabilityUnknownBarber(t *testing.T) {
	repo := seedRepo()
	uc := newAvailabilityUC(t, repo)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		BarberID:     42,
		Date:         bookingDay,
		ServiceIDs:   []uint{10},
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBarberNotAvailable))
}

func TestGetAvailabilityBarberWithOwnSchedule(t *testing.T) {
	repo := seedRepo()
	repo.barbers = repo.barbers[:1]
	repo.schedules[1] = []models.WeeklySchedule{
		// só quarta-feira; terça fica fechada para ele
		{BarberID: 1, Weekday: 3, StartTime: "09:00", EndTime: "18:00"},
	}

	uc := newAvailabilityUC(t, repo)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		Date:         bookingDay,
		ServiceIDs:   []uint{10},
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}
