package release_hold

import (
	"context"
	"fmt"
)

// UseCase use case освобождения hold'а
type UseCase struct {
	holds        HoldStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(holds HoldStore, logger Logger) *UseCase {
	return &UseCase{
		holds:        holds,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute освобождает hold, если он принадлежит вызывающему.
// Отсутствующий (или уже истёкший) hold — ErrHoldNotFound.
func (uc *UseCase) Execute(_ context.Context, holdID string, ownerID int64) error {
	uc.logger.Info("ReleaseHold: owner=%d, holdId=%s", ownerID, holdID)

	if holdID == "" {
		return fmt.Errorf("%w: holdID is required", ErrInvalidInput)
	}
	if ownerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	uc.holds.Purge(now)

	hold, ok := uc.holds.Get(holdID, now)
	if !ok {
		uc.logger.Warn("ReleaseHold: hold %s not found for owner=%d", holdID, ownerID)
		return ErrHoldNotFound
	}

	if !hold.BelongsTo(ownerID) {
		uc.logger.Warn("ReleaseHold: hold %s owned by %d, requested by %d", holdID, hold.OwnerID, ownerID)
		return ErrForbidden
	}

	uc.holds.Delete(holdID)

	uc.logger.Info("ReleaseHold: hold %s released by owner=%d", holdID, ownerID)
	return nil
}
