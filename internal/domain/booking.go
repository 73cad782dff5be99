package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusApproved         BookingStatus = "approved"
	StatusRejected         BookingStatus = "rejected"
	StatusCancelledByUser  BookingStatus = "cancelled_by_user"
	StatusCancelledByAdmin BookingStatus = "cancelled_by_admin"
)

// Booking represents a committed room reservation in the system
type Booking struct {
	ID           int64
	UserID       int64
	FacilityID   int64
	StartTime    time.Time
	EndTime      time.Time
	Status       BookingStatus
	Purpose      *string
	Participants int

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still blocks its time range.
// Only pending and approved bookings count against availability.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByAdmin
}

// OverlapsRange reports whether the booking's interval intersects
// [start, end) under half-open semantics.
func (b *Booking) OverlapsRange(start, end time.Time) bool {
	return Overlaps(b.StartTime, b.EndTime, start, end)
}

// BookingDraft is a candidate booking before it has been committed.
// The validation engine and the authoritative create path both consume it.
type BookingDraft struct {
	UserID       int64
	FacilityID   int64
	StartTime    time.Time
	EndTime      time.Time
	Purpose      *string
	Participants int
}
