package refresh_hold

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	acquireHoldHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/acquire_hold"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	acquireHold "github.com/m04kA/SMC-RoomBookingService/internal/usecase/acquire_hold"
)

const (
	msgMissingHoldID = "ID hold'а обязателен"
	msgHoldNotFound  = "hold не найден или истёк"
	msgForbidden     = "hold принадлежит другому пользователю"
)

type Handler struct {
	useCase AcquireHoldUseCase
	logger  Logger
}

func NewHandler(useCase AcquireHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/holds/{holdId}/refresh
//
// Продление того же слота: поля диапазона не передаются и берутся из
// существующего hold'а. Переезд на другой слот идёт через POST /holds
// с holdId в теле.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	holdID := mux.Vars(r)["holdId"]
	if holdID == "" {
		h.logger.Warn("POST /holds/{id}/refresh - Missing hold ID")
		handlers.RespondBadRequest(w, msgMissingHoldID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &acquireHold.Request{
		HoldID:  &holdID,
		OwnerID: ownerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, acquireHold.ErrHoldNotFound):
			// Hold исчез (вычищен или вытеснен) — клиент должен начать
			// с чистого acquire
			h.logger.Warn("POST /holds/{id}/refresh - Hold not found: hold_id=%s, owner=%d", holdID, ownerID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, acquireHold.ErrForbidden):
			h.logger.Warn("POST /holds/{id}/refresh - Forbidden: hold_id=%s, owner=%d", holdID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /holds/{id}/refresh - Failed: hold_id=%s, owner=%d, error=%v",
				holdID, ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds/{id}/refresh - Hold refreshed: hold_id=%s, owner=%d, expires_at=%s",
		holdID, ownerID, result.Hold.ExpiresAt)
	handlers.RespondJSON(w, http.StatusOK, acquireHoldHandler.FromUseCaseResponse(result))
}
