package release_hold

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	releaseHold "github.com/m04kA/SMC-RoomBookingService/internal/usecase/release_hold"
)

const (
	msgMissingHoldID = "ID hold'а обязателен"
	msgHoldNotFound  = "hold не найден или истёк"
	msgForbidden     = "hold принадлежит другому пользователю"
)

type Handler struct {
	useCase ReleaseHoldUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/holds/{holdId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	holdID := mux.Vars(r)["holdId"]
	if holdID == "" {
		h.logger.Warn("DELETE /holds/{id} - Missing hold ID")
		handlers.RespondBadRequest(w, msgMissingHoldID)
		return
	}

	if err := h.useCase.Execute(r.Context(), holdID, ownerID); err != nil {
		switch {
		case errors.Is(err, releaseHold.ErrHoldNotFound):
			// Повторный release уже отпущенного hold'а не фатален для
			// клиента, но отдаём 404 честно
			h.logger.Warn("DELETE /holds/{id} - Hold not found: hold_id=%s, owner=%d", holdID, ownerID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, releaseHold.ErrForbidden):
			h.logger.Warn("DELETE /holds/{id} - Forbidden: hold_id=%s, owner=%d", holdID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /holds/{id} - Failed: hold_id=%s, owner=%d, error=%v",
				holdID, ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /holds/{id} - Hold released: hold_id=%s, owner=%d", holdID, ownerID)
	handlers.RespondNoContent(w)
}
