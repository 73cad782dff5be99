package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// computeSlots строит полную сетку слотов фиксированной длины на день:
// от открытия до закрытия окна работы с шагом window.SlotMinutes.
//
// Слот получает статус booked, если пересекается хотя бы с одним активным
// (pending/approved) бронированием. Пересечение полуоткрытое: бронирование,
// заканчивающееся ровно на границе слота, слот не занимает.
//
// Чистая функция своих аргументов: одни и те же бронирования всегда дают
// одну и ту же сетку.
func computeSlots(
	window domain.OperatingWindow,
	date time.Time,
	bookings []*domain.Booking,
	facilityActive bool,
) []domain.AvailabilitySlot {
	step := time.Duration(window.SlotMinutes) * time.Minute
	open := window.OpenAt(date)
	close := window.CloseAt(date)

	slots := make([]domain.AvailabilitySlot, 0)

	for slotStart := open; slotStart.Before(close); slotStart = slotStart.Add(step) {
		slotEnd := slotStart.Add(step)
		if slotEnd.After(close) {
			break
		}

		status := domain.SlotAvailable
		if !facilityActive {
			status = domain.SlotClosed
		} else if overlapsAnyActive(slotStart, slotEnd, bookings) {
			status = domain.SlotBooked
		}

		slots = append(slots, domain.AvailabilitySlot{
			Start:  slotStart,
			End:    slotEnd,
			Status: status,
		})
	}

	return slots
}

// overlapsAnyActive проверяет, пересекает ли [start, end) хотя бы одно
// активное бронирование
func overlapsAnyActive(start, end time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.OverlapsRange(start, end) {
			return true
		}
	}
	return false
}
