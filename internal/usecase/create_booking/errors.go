package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrFacilityNotFound возвращается, когда помещение не найдено
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrSlotNotAvailable возвращается, когда диапазон пересекается
	// с существующим активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: time range is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationFailedError несёт полный список нарушенных правил:
// движок валидации не останавливается на первом
type ValidationFailedError struct {
	Errors []domain.ValidationError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("create_booking: draft failed %d validation rule(s)", len(e.Errors))
}
