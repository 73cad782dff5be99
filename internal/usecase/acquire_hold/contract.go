package acquire_hold

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// HoldStore интерфейс таблицы активных hold'ов
type HoldStore interface {
	Purge(now time.Time) int
	Get(id string, now time.Time) (domain.SlotHold, bool)
	Put(hold domain.SlotHold)
	DeleteByOwner(ownerID int64, exceptID string) int
	FindConflicting(facilityID int64, start, end time.Time, excludeOwnerID int64, now time.Time) (domain.SlotHold, bool)
}

// ConflictFinder интерфейс резолвера конфликтов с сохранёнными бронированиями
type ConflictFinder interface {
	FindOverlapping(ctx context.Context, facilityID int64, start, end time.Time) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
