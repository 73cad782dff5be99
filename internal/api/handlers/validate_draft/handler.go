package validate_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	validateDraft "github.com/m04kA/SMC-RoomBookingService/internal/usecase/validate_draft"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidTimes = "некорректный формат времени, ожидается RFC3339"
	msgUnauthorized = "требуется аутентификация"
)

type Handler struct {
	useCase ValidateDraftUseCase
	logger  Logger
}

func NewHandler(useCase ValidateDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate
// Нарушения правил — данные, не ошибки: ответ всегда 200 со списком.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req ValidateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	draft, err := req.ToDraft(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimes)
		return
	}

	violations, err := h.useCase.Execute(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, validateDraft.ErrInvalidInput):
			h.logger.Warn("POST /bookings/validate - Invalid input: user=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		default:
			h.logger.Error("POST /bookings/validate - Failed: user=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/validate - Checked: user=%d, violations=%d", userID, len(violations))
	handlers.RespondJSON(w, http.StatusOK, FromViolations(violations))
}
