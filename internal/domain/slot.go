package domain

import "time"

// SlotStatus describes the availability of a single grid slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotClosed    SlotStatus = "closed"
)

// AvailabilitySlot is one cell of the per-day availability grid.
// It is derived from the current bookings and never stored.
type AvailabilitySlot struct {
	Start  time.Time
	End    time.Time
	Status SlotStatus
}

// IsBookable returns true if the slot can still be reserved
func (s *AvailabilitySlot) IsBookable() bool {
	return s.Status == SlotAvailable
}
