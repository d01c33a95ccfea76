package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/navalha-app/agenda-api/internal/domain/appointment"
	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/models"
)

func seedCancelRepo(t *testing.T, startOffset time.Duration) (*fakeRepo, uuid.UUID) {
	t.Helper()
	repo := seedRepo()

	publicID := uuid.New()
	now := fixedNow(t)

	repo.appointments = []models.Appointment{
		{
			ID:           1,
			PublicID:     publicID,
			BarbershopID: 1,
			BarberID:     1,
			CustomerID:   7,
			Status:       string(domain.StatusScheduled),
			StartTime:    now.Add(startOffset).UTC(),
			EndTime:      now.Add(startOffset + 30*time.Minute).UTC(),
		},
	}

	return repo, publicID
}

func newCancelUC(t *testing.T, repo *fakeRepo) *CancelBooking {
	uc := NewCancelBooking(repo, nil)
	uc.now = func() time.Time { return fixedNow(t) }
	return uc
}

func TestCancelBookingWithNotice(t *testing.T) {
	repo, publicID := seedCancelRepo(t, 3*time.Hour)
	uc := newCancelUC(t, repo)

	ap, err := uc.Execute(context.Background(), 1, publicID, 7)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	assert.NotNil(t, ap.CancelledAt)
	require.NotNil(t, repo.updated)
	assert.Equal(t, string(domain.StatusCancelled), repo.updated.Status)
}

func TestCancelBookingTooLate(t *testing.T) {
	repo, publicID := seedCancelRepo(t, 90*time.Minute)
	uc := newCancelUC(t, repo)

	_, err := uc.Execute(context.Background(), 1, publicID, 7)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeCancelTooLate))
	assert.Nil(t, repo.updated)
}

func TestCancelBookingWrongCustomer(t *testing.T) {
	repo, publicID := seedCancelRepo(t, 3*time.Hour)
	uc := newCancelUC(t, repo)

	_, err := uc.Execute(context.Background(), 1, publicID, 999)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestCancelBookingUnknownPublicID(t *testing.T) {
	repo, _ := seedCancelRepo(t, 3*time.Hour)
	uc := newCancelUC(t, repo)

	_, err := uc.Execute(context.Background(), 1, uuid.New(), 7)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}
