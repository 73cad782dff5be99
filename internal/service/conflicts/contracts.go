package conflicts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований.
// Выборка идёт по календарному дню: это позволяет кэшировать и батчить
// запросы на уровне хранилища.
type BookingRepository interface {
	GetByFacilityAndDay(ctx context.Context, facilityID int64, day time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
