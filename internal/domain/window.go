package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// OperatingWindow is the daily open/close time range within which bookings
// are permitted, together with the fixed slot interval. It is built once
// from configuration and passed explicitly to consumers.
type OperatingWindow struct {
	Open        types.TimeString
	Close       types.TimeString
	SlotMinutes int
}

// Validate checks the window for internal consistency.
func (w OperatingWindow) Validate() error {
	if err := w.Open.Validate(); err != nil {
		return fmt.Errorf("operating window: open time: %w", err)
	}
	if err := w.Close.Validate(); err != nil {
		return fmt.Errorf("operating window: close time: %w", err)
	}
	if !w.Open.IsBefore(w.Close) {
		return fmt.Errorf("operating window: open time %s must be before close time %s", w.Open, w.Close)
	}
	if w.SlotMinutes <= 0 {
		return fmt.Errorf("operating window: slot interval must be positive, got %d", w.SlotMinutes)
	}
	return nil
}

// OpenAt anchors the opening time to the given calendar date.
func (w OperatingWindow) OpenAt(date time.Time) time.Time {
	return w.Open.OnDate(date)
}

// CloseAt anchors the closing time to the given calendar date.
func (w OperatingWindow) CloseAt(date time.Time) time.Time {
	return w.Close.OnDate(date)
}

// Contains reports whether [start, end) lies entirely within the window
// on start's calendar day.
func (w OperatingWindow) Contains(start, end time.Time) bool {
	open := w.OpenAt(start)
	close := w.CloseAt(start)
	return !start.Before(open) && !end.After(close)
}
