package domain

import "time"

// SlotHold is an advisory, time-limited reservation of a facility time range.
// It prevents other users from completing a conflicting booking while one
// user finishes their submission. Holds live only in process memory and are
// never persisted.
type SlotHold struct {
	ID          string
	FacilityID  int64
	OwnerID     int64
	StartTime   time.Time
	EndTime     time.Time
	ExpiresAt   time.Time
	CreatedAt   time.Time
	RefreshedAt time.Time
}

// IsExpired reports whether the hold is logically dead at the given instant.
// An expired hold must never block a new acquire, even before it has been
// physically purged from the table.
func (h *SlotHold) IsExpired(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}

// BelongsTo reports whether the hold is owned by the given user.
func (h *SlotHold) BelongsTo(ownerID int64) bool {
	return h.OwnerID == ownerID
}

// OverlapsRange reports whether the hold's interval intersects
// [start, end) under half-open semantics.
func (h *SlotHold) OverlapsRange(start, end time.Time) bool {
	return Overlaps(h.StartTime, h.EndTime, start, end)
}
