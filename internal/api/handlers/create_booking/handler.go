package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidTimes     = "некорректный формат времени, ожидается RFC3339"
	msgUnauthorized     = "требуется аутентификация"
	msgFacilityNotFound = "помещение не найдено"
	msgSlotNotAvailable = "выбранное время уже занято"
	msgValidationFailed = "черновик не прошёл проверку правил"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimes)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, err, userID)
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user=%d, facility=%d",
		result.ID, userID, result.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, userID int64) {
	var validationErr *createBooking.ValidationFailedError

	switch {
	case errors.As(err, &validationErr):
		h.logger.Warn("POST /bookings - Validation failed: user=%d, violations=%d",
			userID, len(validationErr.Errors))
		handlers.RespondJSON(w, http.StatusBadRequest, &ValidationFailedResponse{
			Code:    http.StatusBadRequest,
			Message: msgValidationFailed,
			Errors:  validationErr.Errors,
		})

	case errors.Is(err, createBooking.ErrFacilityNotFound):
		h.logger.Warn("POST /bookings - Facility not found: user=%d", userID)
		handlers.RespondNotFound(w, msgFacilityNotFound)

	case errors.Is(err, createBooking.ErrSlotNotAvailable):
		h.logger.Warn("POST /bookings - Slot not available: user=%d", userID)
		handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings - Invalid input: user=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)

	default:
		h.logger.Error("POST /bookings - Failed: user=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
	}
}
