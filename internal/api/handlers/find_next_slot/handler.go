package find_next_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	findNextSlot "github.com/m04kA/SMC-RoomBookingService/internal/usecase/find_next_slot"
)

const (
	msgInvalidFacilityID = "некорректный ID помещения"
	msgInvalidFrom       = "некорректный параметр from, ожидается RFC3339"
	msgFacilityNotFound  = "помещение не найдено"
)

type Handler struct {
	useCase FindNextSlotUseCase
	logger  Logger
}

func NewHandler(useCase FindNextSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/next-available
// Query params: from (optional, RFC3339; по умолчанию — текущий момент)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityIDStr := mux.Vars(r)["facilityId"]
	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/next-available - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	from := time.Now()
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/next-available - Invalid from param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &findNextSlot.Request{
		FacilityID: facilityID,
		From:       from,
	})
	if err != nil {
		switch {
		case errors.Is(err, findNextSlot.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/next-available - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, findNextSlot.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/next-available - Invalid input: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidFrom)

		default:
			h.logger.Error("GET /facilities/{id}/next-available - Failed: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/next-available - Search done: facility_id=%d, found=%t",
		facilityID, result.Slot != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
