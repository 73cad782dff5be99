package conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Service находит сохранённые бронирования, конфликтующие с интервалом-кандидатом
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса конфликтов
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// FindOverlapping возвращает активные бронирования (pending/approved) помещения,
// пересекающиеся с [start, end).
//
// Бронирования выбираются за календарный день, содержащий start, затем
// фильтруются по статусу и реальному пересечению интервалов:
//
//	overlaps(aStart, aEnd, bStart, bEnd) = aStart < bEnd AND aEnd > bStart
//
// Полуоткрытые интервалы: бронирование, заканчивающееся ровно в момент
// начала кандидата, конфликтом НЕ считается.
func (s *Service) FindOverlapping(ctx context.Context, facilityID int64, start, end time.Time) ([]*domain.Booking, error) {
	day := domain.DayOf(start)

	bookings, err := s.bookingRepo.GetByFacilityAndDay(ctx, facilityID, day)
	if err != nil {
		s.logger.Error("FindOverlapping: failed to get bookings for facility=%d, day=%s: %v",
			facilityID, day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: FindOverlapping - repository error: %v", ErrInternal, err)
	}

	overlapping := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.OverlapsRange(start, end) {
			overlapping = append(overlapping, b)
		}
	}

	return overlapping, nil
}
