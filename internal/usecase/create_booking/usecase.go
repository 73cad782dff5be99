package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-RoomBookingService/internal/validation"
)

// UseCase use case создания бронирования — авторитетный путь коммита.
// Независимо от hold'ов перепроверяет пересечения в сериализуемой
// транзакции: hold лишь сужает окно гонки, но не является источником истины.
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	txManager    TransactionManager
	holds        HoldReleaser
	window       domain.OperatingWindow
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	txManager TransactionManager,
	holds HoldReleaser,
	window domain.OperatingWindow,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		txManager:    txManager,
		holds:        holds,
		window:       window,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, facility=%d, start=%s, end=%s",
		req.UserID, req.FacilityID,
		req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.EndTime.Format(domain.TimeFormat))

	// 1. Валидация входных данных
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if req.Purpose != nil && len(*req.Purpose) > domain.MaxPurposeLength {
		return nil, fmt.Errorf("%w: purpose too long", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем помещение
	fac, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 4. Полная проверка бизнес-правил. Движок отдаёт все нарушения разом,
	// чтобы пользователь увидел их одним списком.
	if violations := validation.Validate(req.toDraft(), fac, uc.window, now); len(violations) > 0 {
		uc.logger.Warn("CreateBooking: draft failed %d validation rule(s) for user=%d",
			len(violations), req.UserID)
		return nil, &ValidationFailedError{Errors: violations}
	}

	var result *domain.Booking

	// 5. Авторитетная проверка пересечений и вставка в сериализуемой
	// транзакции — предотвращает гонку двух одновременных коммитов
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetByFacilityAndDay(txCtx, req.FacilityID, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for _, b := range bookings {
			if b.IsActive() && b.OverlapsRange(req.StartTime, req.EndTime) {
				uc.logger.Warn("CreateBooking: range overlaps booking id=%d for facility=%d",
					b.ID, req.FacilityID)
				return ErrSlotNotAvailable
			}
		}

		booking := &domain.Booking{
			UserID:       req.UserID,
			FacilityID:   req.FacilityID,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Status:       domain.StatusPending,
			Purpose:      req.Purpose,
			Participants: req.Participants,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 6. Бронирование зафиксировано — hold больше не нужен
	if req.HoldID != nil {
		uc.holds.Delete(*req.HoldID)
	} else {
		uc.holds.DeleteByOwner(req.UserID, "")
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		FacilityID:   result.FacilityID,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		Purpose:      result.Purpose,
		Participants: result.Participants,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
