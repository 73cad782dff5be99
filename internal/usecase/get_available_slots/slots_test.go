package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	testDate   = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	testWindow = domain.OperatingWindow{
		Open:        "07:30",
		Close:       "19:00",
		SlotMinutes: 30,
	}
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func slotByStart(t *testing.T, slots []domain.AvailabilitySlot, start time.Time) domain.AvailabilitySlot {
	t.Helper()
	for _, s := range slots {
		if s.Start.Equal(start) {
			return s
		}
	}
	t.Fatalf("no slot starting at %s", start.Format(time.RFC3339))
	return domain.AvailabilitySlot{}
}

func TestComputeSlots_FullGridShape(t *testing.T) {
	slots := computeSlots(testWindow, testDate, nil, true)

	// 07:30-19:00 с шагом 30 минут = 23 слота
	require.Len(t, slots, 23)
	assert.Equal(t, at(7, 30), slots[0].Start)
	assert.Equal(t, at(8, 0), slots[0].End)
	assert.Equal(t, at(18, 30), slots[22].Start)
	assert.Equal(t, at(19, 0), slots[22].End)

	for _, s := range slots {
		assert.Equal(t, domain.SlotAvailable, s.Status)
	}
}

func TestComputeSlots_BookingMarksExactlyCoveredSlots(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:        1,
			Status:    domain.StatusApproved,
			StartTime: at(10, 0),
			EndTime:   at(11, 0),
		},
	}

	slots := computeSlots(testWindow, testDate, bookings, true)

	assert.Equal(t, domain.SlotBooked, slotByStart(t, slots, at(10, 0)).Status)
	assert.Equal(t, domain.SlotBooked, slotByStart(t, slots, at(10, 30)).Status)

	// Соседние слоты свободны: границы полуоткрытые
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, slots, at(9, 30)).Status)
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, slots, at(11, 0)).Status)
}

func TestComputeSlots_PartialOverlapMarksWholeSlot(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:        1,
			Status:    domain.StatusPending,
			StartTime: at(10, 15),
			EndTime:   at(10, 45),
		},
	}

	slots := computeSlots(testWindow, testDate, bookings, true)

	// Бронирование задевает оба слота частично — оба заняты целиком
	assert.Equal(t, domain.SlotBooked, slotByStart(t, slots, at(10, 0)).Status)
	assert.Equal(t, domain.SlotBooked, slotByStart(t, slots, at(10, 30)).Status)
	assert.Equal(t, domain.SlotAvailable, slotByStart(t, slots, at(11, 0)).Status)
}

func TestComputeSlots_InactiveBookingsIgnored(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:        1,
			Status:    domain.StatusCancelledByUser,
			StartTime: at(10, 0),
			EndTime:   at(11, 0),
		},
		{
			ID:        2,
			Status:    domain.StatusRejected,
			StartTime: at(12, 0),
			EndTime:   at(13, 0),
		},
	}

	slots := computeSlots(testWindow, testDate, bookings, true)

	for _, s := range slots {
		assert.Equal(t, domain.SlotAvailable, s.Status)
	}
}

func TestComputeSlots_InactiveFacilityAllClosed(t *testing.T) {
	slots := computeSlots(testWindow, testDate, nil, false)

	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.Equal(t, domain.SlotClosed, s.Status)
	}
}

func TestComputeSlots_Deterministic(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:        1,
			Status:    domain.StatusApproved,
			StartTime: at(14, 0),
			EndTime:   at(15, 30),
		},
	}

	first := computeSlots(testWindow, testDate, bookings, true)
	second := computeSlots(testWindow, testDate, bookings, true)

	assert.Equal(t, first, second)
}
