package release_hold

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// HoldStore интерфейс таблицы активных hold'ов
type HoldStore interface {
	Purge(now time.Time) int
	Get(id string, now time.Time) (domain.SlotHold, bool)
	Delete(id string) bool
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
