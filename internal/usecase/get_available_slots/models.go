package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модель запроса сетки доступности
type Request struct {
	FacilityID int64     // ID помещения
	Date       time.Time // Дата, на которую строится сетка (без времени)
}

// Response модель ответа с сеткой слотов на день
type Response struct {
	FacilityID int64
	Date       time.Time
	Slots      []domain.AvailabilitySlot
}
