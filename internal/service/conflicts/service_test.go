package conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotFacilityID int64
	gotDay        time.Time
}

func (f *fakeBookingRepo) GetByFacilityAndDay(_ context.Context, facilityID int64, day time.Time) ([]*domain.Booking, error) {
	f.gotFacilityID = facilityID
	f.gotDay = day
	return f.bookings, f.err
}

func booking(id int64, status domain.BookingStatus, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		UserID:     1,
		FacilityID: 10,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
	}
}

func TestFindOverlapping_FiltersByStatusAndRange(t *testing.T) {
	day10 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			booking(1, domain.StatusApproved, day10, day10.Add(time.Hour)),                         // пересекается
			booking(2, domain.StatusCancelledByUser, day10, day10.Add(time.Hour)),                  // отменено
			booking(3, domain.StatusPending, day10.Add(3*time.Hour), day10.Add(4*time.Hour)),       // в стороне
			booking(4, domain.StatusRejected, day10.Add(30*time.Minute), day10.Add(2*time.Hour)),   // отклонено
			booking(5, domain.StatusPending, day10.Add(30*time.Minute), day10.Add(90*time.Minute)), // пересекается
		},
	}
	svc := NewService(repo, fakeLogger{})

	got, err := svc.FindOverlapping(context.Background(), 10, day10, day10.Add(time.Hour))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(5), got[1].ID)

	// Выборка идёт за календарный день начала кандидата
	assert.Equal(t, int64(10), repo.gotFacilityID)
	assert.Equal(t, domain.DayOf(day10), repo.gotDay)
}

func TestFindOverlapping_TouchingEndpointsDoNotConflict(t *testing.T) {
	day10 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			// Заканчивается ровно в момент начала кандидата
			booking(1, domain.StatusApproved, day10.Add(-time.Hour), day10),
			// Начинается ровно в момент конца кандидата
			booking(2, domain.StatusApproved, day10.Add(time.Hour), day10.Add(2*time.Hour)),
		},
	}
	svc := NewService(repo, fakeLogger{})

	got, err := svc.FindOverlapping(context.Background(), 10, day10, day10.Add(time.Hour))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindOverlapping_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	svc := NewService(repo, fakeLogger{})

	day10 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	_, err := svc.FindOverlapping(context.Background(), 10, day10, day10.Add(time.Hour))

	assert.ErrorIs(t, err, ErrInternal)
}
