package validate_draft

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-RoomBookingService/internal/validation"
)

var (
	testNow    = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	testWindow = domain.OperatingWindow{
		Open:        "07:30",
		Close:       "19:00",
		SlotMinutes: 30,
	}
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type fakeFacilityRepo struct {
	facility *domain.Facility
	err      error
}

func (f *fakeFacilityRepo) GetByID(context.Context, int64) (*domain.Facility, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.facility == nil {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	return f.facility, nil
}

func validDraft() domain.BookingDraft {
	return domain.BookingDraft{
		UserID:       1,
		FacilityID:   10,
		StartTime:    testNow.Add(time.Hour),
		EndTime:      testNow.Add(2 * time.Hour),
		Participants: 4,
	}
}

func TestValidateDraft_CleanDraftHasNoViolations(t *testing.T) {
	repo := &fakeFacilityRepo{facility: &domain.Facility{ID: 10, Name: "Room A", Active: true, Capacity: 8}}
	uc := NewUseCase(repo, testWindow, fakeLogger{}).WithTimeProvider(&fixedTime{now: testNow})

	violations, err := uc.Execute(context.Background(), validDraft())

	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidateDraft_MissingFacilityIsViolationNotError(t *testing.T) {
	uc := NewUseCase(&fakeFacilityRepo{}, testWindow, fakeLogger{}).WithTimeProvider(&fixedTime{now: testNow})

	violations, err := uc.Execute(context.Background(), validDraft())

	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, validation.TitleFacilityUnavailable, violations[0].Title)
}

func TestValidateDraft_RepositoryErrorIsInternal(t *testing.T) {
	repo := &fakeFacilityRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, testWindow, fakeLogger{}).WithTimeProvider(&fixedTime{now: testNow})

	_, err := uc.Execute(context.Background(), validDraft())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestValidateDraft_InvalidFacilityIDRejected(t *testing.T) {
	uc := NewUseCase(&fakeFacilityRepo{}, testWindow, fakeLogger{}).WithTimeProvider(&fixedTime{now: testNow})

	draft := validDraft()
	draft.FacilityID = 0

	_, err := uc.Execute(context.Background(), draft)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
