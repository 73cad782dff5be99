package validate_draft

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-RoomBookingService/internal/validation"
)

// UseCase use case предварительной проверки черновика бронирования.
// Отдаёт тот же список нарушений, что и авторитетный коммит: ранний
// просмотр в форме и финальная проверка никогда не расходятся.
type UseCase struct {
	facilityRepo FacilityRepository
	window       domain.OperatingWindow
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(facilityRepo FacilityRepository, window domain.OperatingWindow, logger Logger) *UseCase {
	return &UseCase{
		facilityRepo: facilityRepo,
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

// Execute проверяет черновик по всем правилам и возвращает список нарушений.
// Пустой список — черновик проходит. Ошибки здесь нет: нарушения — данные,
// решение о показе принимает вызывающая сторона.
func (uc *UseCase) Execute(ctx context.Context, draft domain.BookingDraft) ([]domain.ValidationError, error) {
	uc.logger.Info("ValidateDraft: user=%d, facility=%d", draft.UserID, draft.FacilityID)

	if draft.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	// Отсутствующее помещение — не ошибка запроса, а нарушение правила:
	// движок получит nil и добавит его в общий список
	fac, err := uc.facilityRepo.GetByID(ctx, draft.FacilityID)
	if err != nil && !errors.Is(err, facilityRepo.ErrFacilityNotFound) {
		uc.logger.Error("ValidateDraft: failed to get facility id=%d: %v", draft.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	violations := validation.Validate(draft, fac, uc.window, uc.timeProvider.Now())

	uc.logger.Info("ValidateDraft: %d rule violation(s) for user=%d", len(violations), draft.UserID)
	return violations, nil
}
