package find_next_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/facility"
)

var testWindow = domain.OperatingWindow{
	Open:        "07:30",
	Close:       "19:00",
	SlotMinutes: 30,
}

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	// бронирования по дню (ключ — дата в формате YYYY-MM-DD)
	byDay map[string][]*domain.Booking
}

func (f *fakeBookingRepo) GetByFacilityAndDay(_ context.Context, _ int64, day time.Time) ([]*domain.Booking, error) {
	return f.byDay[day.Format(domain.DateFormat)], nil
}

type fakeFacilityRepo struct {
	facility *domain.Facility
}

func (f *fakeFacilityRepo) GetByID(context.Context, int64) (*domain.Facility, error) {
	if f.facility == nil {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	return f.facility, nil
}

func activeFacility() *domain.Facility {
	return &domain.Facility{ID: 10, Name: "Room A", Active: true, Capacity: 8}
}

func at(day, hour, min int) time.Time {
	return time.Date(2025, 6, day, hour, min, 0, 0, time.UTC)
}

func approved(start, end time.Time) *domain.Booking {
	return &domain.Booking{Status: domain.StatusApproved, StartTime: start, EndTime: end}
}

func TestFindNextSlot_RoundsUpToSlotBoundary(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: activeFacility()}, testWindow, 2, fakeLogger{})

	// 10:12 округляется вверх до 10:30
	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, From: at(2, 10, 12)})

	require.NoError(t, err)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, at(2, 10, 30), resp.Slot.Start)
	assert.Equal(t, at(2, 11, 0), resp.Slot.End)
	assert.Equal(t, domain.SlotAvailable, resp.Slot.Status)
}

func TestFindNextSlot_BeforeOpeningStartsAtOpen(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: activeFacility()}, testWindow, 2, fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, From: at(2, 5, 0)})

	require.NoError(t, err)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, at(2, 7, 30), resp.Slot.Start)
}

func TestFindNextSlot_SkipsBookedSlots(t *testing.T) {
	repo := &fakeBookingRepo{byDay: map[string][]*domain.Booking{
		"2025-06-02": {approved(at(2, 10, 0), at(2, 12, 0))},
	}}
	uc := NewUseCase(repo, &fakeFacilityRepo{facility: activeFacility()}, testWindow, 2, fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, From: at(2, 10, 0)})

	require.NoError(t, err)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, at(2, 12, 0), resp.Slot.Start)
}

func TestFindNextSlot_RollsOverToNextDayOpening(t *testing.T) {
	// Остаток дня занят: с 18:50 последний слот (18:30-19:00) уже недостижим,
	// а день 2 полностью занят бронированием до закрытия
	repo := &fakeBookingRepo{byDay: map[string][]*domain.Booking{
		"2025-06-02": {approved(at(2, 18, 0), at(2, 19, 0))},
	}}
	uc := NewUseCase(repo, &fakeFacilityRepo{facility: activeFacility()}, testWindow, 2, fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, From: at(2, 18, 50)})

	require.NoError(t, err)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, at(3, 7, 30), resp.Slot.Start)
	assert.Equal(t, at(3, 8, 0), resp.Slot.End)
}

func TestFindNextSlot_NoSlotWithinHorizon(t *testing.T) {
	// Оба дня горизонта заняты целиком
	repo := &fakeBookingRepo{byDay: map[string][]*domain.Booking{
		"2025-06-02": {approved(at(2, 7, 30), at(2, 19, 0))},
		"2025-06-03": {approved(at(3, 7, 30), at(3, 19, 0))},
	}}
	uc := NewUseCase(repo, &fakeFacilityRepo{facility: activeFacility()}, testWindow, 2, fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 10, From: at(2, 8, 0)})

	require.NoError(t, err)
	assert.Nil(t, resp.Slot)
	assert.Equal(t, int64(10), resp.FacilityID)
}

func TestFindNextSlot_FacilityNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{}, testWindow, 2, fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 99, From: at(2, 10, 0)})

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestFindNextSlot_ZeroFromRejected(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeFacilityRepo{facility: activeFacility()}, testWindow, 2, fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 10})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
