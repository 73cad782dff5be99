package acquire_hold

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// UseCase use case захвата и продления hold'а на временной слот.
//
// Hold — рекомендательная блокировка в памяти одного процесса: она сужает,
// но не устраняет окно гонки. Источником истины остаётся авторитетная
// проверка при создании бронирования.
type UseCase struct {
	holds        HoldStore
	conflicts    ConflictFinder
	ttl          time.Duration
	refreshGrace time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	holds HoldStore,
	conflicts ConflictFinder,
	ttl time.Duration,
	refreshGrace time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		holds:        holds,
		conflicts:    conflicts,
		ttl:          ttl,
		refreshGrace: refreshGrace,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет захват нового hold'а или продление существующего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AcquireHold: owner=%d, holdId=%v, facility=%v", req.OwnerID, req.HoldID, req.FacilityID)

	// 1. Ленивая чистка истёкших hold'ов. Фонового таймера нет:
	// память ограничивается на каждом мутирующем вызове.
	if purged := uc.holds.Purge(uc.timeProvider.Now()); purged > 0 {
		uc.logger.Info("AcquireHold: purged %d expired hold(s)", purged)
	}

	now := uc.timeProvider.Now()

	// 2. При продлении hold должен существовать и принадлежать владельцу
	var existing *domain.SlotHold
	if req.HoldID != nil {
		h, ok := uc.holds.Get(*req.HoldID, now)
		if !ok {
			uc.logger.Warn("AcquireHold: hold %s not found for owner=%d", *req.HoldID, req.OwnerID)
			return nil, ErrHoldNotFound
		}
		if !h.BelongsTo(req.OwnerID) {
			uc.logger.Warn("AcquireHold: hold %s owned by %d, requested by %d", h.ID, h.OwnerID, req.OwnerID)
			return nil, ErrForbidden
		}
		existing = &h
	}

	// 3. Эффективные помещение и диапазон: явные аргументы поверх полей
	// существующего hold'а. Так одна операция покрывает и "продлить тот же
	// слот", и "продлить с переездом на новый".
	facilityID, start, end, err := resolveTarget(req, existing)
	if err != nil {
		uc.logger.Warn("AcquireHold: validation failed for owner=%d: %v", req.OwnerID, err)
		return nil, err
	}

	// 4. Диапазон должен быть непустым
	if !end.After(start) {
		uc.logger.Warn("AcquireHold: empty range for owner=%d: start=%s, end=%s",
			req.OwnerID, start.Format(time.RFC3339), end.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}

	// 5. Новый hold вытесняет прежний hold владельца:
	// не более одного активного hold'а на владельца
	if existing == nil {
		if evicted := uc.holds.DeleteByOwner(req.OwnerID, ""); evicted > 0 {
			uc.logger.Info("AcquireHold: evicted %d prior hold(s) of owner=%d", evicted, req.OwnerID)
		}
	}

	// 6. Живой hold другого владельца на пересекающемся диапазоне — конфликт.
	// В ответе срок его жизни: вызывающая сторона решает, ждать или выбрать
	// другой слот, автоматических повторов здесь нет.
	if other, found := uc.holds.FindConflicting(facilityID, start, end, req.OwnerID, now); found {
		uc.logger.Warn("AcquireHold: facility=%d held by owner=%d until %s",
			facilityID, other.OwnerID, other.ExpiresAt.Format(time.RFC3339))
		return nil, &HoldHeldError{
			FacilityID: facilityID,
			RetryAfter: other.ExpiresAt,
		}
	}

	// 7. Пересечение с сохранённым бронированием — конфликт с деталями
	overlapping, err := uc.conflicts.FindOverlapping(ctx, facilityID, start, end)
	if err != nil {
		uc.logger.Error("AcquireHold: conflict check failed for facility=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}
	if len(overlapping) > 0 {
		uc.logger.Warn("AcquireHold: facility=%d has %d overlapping booking(s)", facilityID, len(overlapping))
		return nil, &BookingExistsError{
			FacilityID: facilityID,
			Bookings:   toConflictingBookings(overlapping),
		}
	}

	// 8. Создаем или обновляем hold со свежим сроком жизни
	hold := domain.SlotHold{
		FacilityID:  facilityID,
		OwnerID:     req.OwnerID,
		StartTime:   start,
		EndTime:     end,
		ExpiresAt:   now.Add(uc.ttl),
		RefreshedAt: now,
	}
	if existing != nil {
		hold.ID = existing.ID
		hold.CreatedAt = existing.CreatedAt
	} else {
		hold.ID = newHoldID()
		hold.CreatedAt = now
	}

	uc.holds.Put(hold)

	uc.logger.Info("AcquireHold: hold %s on facility=%d [%s, %s) expires at %s",
		hold.ID, hold.FacilityID,
		hold.StartTime.Format(time.RFC3339), hold.EndTime.Format(time.RFC3339),
		hold.ExpiresAt.Format(time.RFC3339))

	return &Response{
		Hold:         hold,
		RefreshAfter: hold.ExpiresAt.Add(-uc.refreshGrace),
	}, nil
}

// toConflictingBookings сводит бронирования к данным, нужным вызывающей стороне
func toConflictingBookings(bookings []*domain.Booking) []ConflictingBooking {
	result := make([]ConflictingBooking, len(bookings))
	for i, b := range bookings {
		result[i] = ConflictingBooking{
			ID:        b.ID,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
		}
	}
	return result
}
