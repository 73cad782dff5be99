package find_next_slot

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модель запроса поиска ближайшего свободного слота
type Request struct {
	FacilityID int64
	From       time.Time // Момент, с которого искать (округляется вверх до границы слота)
}

// Response модель ответа. Slot == nil — свободный слот в пределах
// горизонта поиска не найден.
type Response struct {
	FacilityID int64
	Slot       *domain.AvailabilitySlot
}
