package release_hold

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/holdstore"
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

func putHold(s *holdstore.Store, id string, ownerID int64, expiresAt time.Time) {
	s.Put(domain.SlotHold{
		ID:         id,
		FacilityID: 10,
		OwnerID:    ownerID,
		StartTime:  testNow.Add(time.Hour),
		EndTime:    testNow.Add(2 * time.Hour),
		ExpiresAt:  expiresAt,
		CreatedAt:  testNow,
	})
}

func TestReleaseHold_OwnerReleasesOwnHold(t *testing.T) {
	holds := holdstore.New()
	putHold(holds, "h1", 1, testNow.Add(2*time.Minute))
	uc := NewUseCase(holds, fakeLogger{}).WithTimeProvider(&fixedTime{now: testNow})

	err := uc.Execute(context.Background(), "h1", 1)

	require.NoError(t, err)
	_, ok := holds.Get("h1", testNow)
	assert.False(t, ok)
}

func TestReleaseHold_UnknownHold(t *testing.T) {
	uc := NewUseCase(holdstore.New(), fakeLogger{}).WithTimeProvider(&fixedTime{now: testNow})

	err := uc.Execute(context.Background(), "missing", 1)

	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestReleaseHold_ExpiredHoldTreatedAsAbsent(t *testing.T) {
	holds := holdstore.New()
	putHold(holds, "h1", 1, testNow.Add(-time.Second))
	uc := NewUseCase(holds, fakeLogger{}).WithTimeProvider(&fixedTime{now: testNow})

	err := uc.Execute(context.Background(), "h1", 1)

	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestReleaseHold_ForeignHoldForbidden(t *testing.T) {
	holds := holdstore.New()
	putHold(holds, "h1", 1, testNow.Add(2*time.Minute))
	uc := NewUseCase(holds, fakeLogger{}).WithTimeProvider(&fixedTime{now: testNow})

	err := uc.Execute(context.Background(), "h1", 2)

	assert.ErrorIs(t, err, ErrForbidden)
	_, ok := holds.Get("h1", testNow)
	assert.True(t, ok, "foreign hold must stay untouched")
}

func TestReleaseHold_EmptyInputRejected(t *testing.T) {
	uc := NewUseCase(holdstore.New(), fakeLogger{}).WithTimeProvider(&fixedTime{now: testNow})

	assert.ErrorIs(t, uc.Execute(context.Background(), "", 1), ErrInvalidInput)
	assert.ErrorIs(t, uc.Execute(context.Background(), "h1", 0), ErrInvalidInput)
}
