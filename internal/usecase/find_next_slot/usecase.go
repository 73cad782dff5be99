package find_next_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/facility"
)

// UseCase use case поиска ближайшего свободного слота.
// Используется и для подсказки слота в UI, и как запасной вариант после
// неудачной валидации, поэтому от состояния UI не зависит.
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	window       domain.OperatingWindow
	searchDays   int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// searchDays ограничивает горизонт поиска в днях.
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	window domain.OperatingWindow,
	searchDays int,
	logger Logger,
) *UseCase {
	if searchDays <= 0 {
		searchDays = domain.DefaultNextSlotSearchDays
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		window:       window,
		searchDays:   searchDays,
		logger:       logger,
	}
}

// Execute ищет ближайший свободный слот начиная с req.From.
// Сканирует слот за слотом; исчерпав день, продолжает со времени открытия
// следующего дня. Поиск ограничен searchDays днями — дальше отдаёт
// Slot == nil, не ошибку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindNextSlot: facility=%d, from=%s",
		req.FacilityID, req.From.Format(time.RFC3339))

	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}
	if req.From.IsZero() {
		return nil, fmt.Errorf("%w: from is required", ErrInvalidInput)
	}

	if _, err := uc.facilityRepo.GetByID(ctx, req.FacilityID); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("FindNextSlot: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("FindNextSlot: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	step := time.Duration(uc.window.SlotMinutes) * time.Minute
	cursor := roundUpToSlotBoundary(req.From, uc.window)

	for day := 0; day < uc.searchDays; day++ {
		dayDate := domain.DayOf(req.From).AddDate(0, 0, day)
		open := uc.window.OpenAt(dayDate)
		close := uc.window.CloseAt(dayDate)

		// Со второго дня начинаем с открытия
		if day > 0 || cursor.Before(open) {
			cursor = open
		}

		bookings, err := uc.bookingRepo.GetByFacilityAndDay(ctx, req.FacilityID, dayDate)
		if err != nil {
			uc.logger.Error("FindNextSlot: failed to get bookings for day=%s: %v",
				dayDate.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for ; !cursor.Add(step).After(close); cursor = cursor.Add(step) {
			slotEnd := cursor.Add(step)
			if overlapsAnyActive(cursor, slotEnd, bookings) {
				continue
			}

			uc.logger.Info("FindNextSlot: found free slot [%s, %s) for facility=%d",
				cursor.Format(time.RFC3339), slotEnd.Format(time.RFC3339), req.FacilityID)
			return &Response{
				FacilityID: req.FacilityID,
				Slot: &domain.AvailabilitySlot{
					Start:  cursor,
					End:    slotEnd,
					Status: domain.SlotAvailable,
				},
			}, nil
		}
	}

	uc.logger.Info("FindNextSlot: no free slot within %d day(s) for facility=%d",
		uc.searchDays, req.FacilityID)
	return &Response{FacilityID: req.FacilityID, Slot: nil}, nil
}

// roundUpToSlotBoundary округляет момент вверх до ближайшей границы слота,
// отсчитываемой от времени открытия
func roundUpToSlotBoundary(t time.Time, window domain.OperatingWindow) time.Time {
	open := window.OpenAt(t)
	if t.Before(open) {
		return open
	}

	step := time.Duration(window.SlotMinutes) * time.Minute
	elapsed := t.Sub(open)
	slots := elapsed / step
	if elapsed%step != 0 {
		slots++
	}
	return open.Add(slots * step)
}

// overlapsAnyActive проверяет, пересекает ли [start, end) хотя бы одно
// активное бронирование
func overlapsAnyActive(start, end time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.OverlapsRange(start, end) {
			return true
		}
	}
	return false
}
