package validate_draft

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

type ValidateDraftUseCase interface {
	Execute(ctx context.Context, draft domain.BookingDraft) ([]domain.ValidationError, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
