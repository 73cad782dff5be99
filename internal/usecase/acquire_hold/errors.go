package acquire_hold

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrHoldNotFound возвращается, когда hold не найден или уже истёк
	ErrHoldNotFound = errors.New("acquire_hold: hold not found")

	// ErrForbidden возвращается, когда hold принадлежит другому владельцу
	ErrForbidden = errors.New("acquire_hold: hold belongs to another owner")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("acquire_hold: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("acquire_hold: internal error")
)

// HoldHeldError конфликт: живой hold другого владельца пересекает запрошенный
// диапазон. Несёт срок жизни чужого hold'а, чтобы вызывающая сторона могла
// предложить "попробуйте после".
type HoldHeldError struct {
	FacilityID int64
	RetryAfter time.Time
}

func (e *HoldHeldError) Error() string {
	return fmt.Sprintf("acquire_hold: facility %d is held by another user until %s",
		e.FacilityID, e.RetryAfter.Format(time.RFC3339))
}

// ConflictingBooking краткие сведения о мешающем бронировании
type ConflictingBooking struct {
	ID        int64
	StartTime time.Time
	EndTime   time.Time
	Status    domain.BookingStatus
}

// BookingExistsError конфликт: запрошенный диапазон пересекается
// с сохранённым бронированием (pending или approved)
type BookingExistsError struct {
	FacilityID int64
	Bookings   []ConflictingBooking
}

func (e *BookingExistsError) Error() string {
	return fmt.Sprintf("acquire_hold: facility %d has %d overlapping booking(s)",
		e.FacilityID, len(e.Bookings))
}
