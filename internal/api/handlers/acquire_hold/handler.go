package acquire_hold

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	acquireHold "github.com/m04kA/SMC-RoomBookingService/internal/usecase/acquire_hold"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgHoldNotFound       = "hold не найден или истёк"
	msgForbidden          = "hold принадлежит другому пользователю"
	msgInvalidRange       = "некорректный временной диапазон"
	msgHoldHeld           = "слот удерживается другим пользователем"
	msgBookingExists      = "диапазон пересекается с существующим бронированием"
)

type Handler struct {
	useCase AcquireHoldUseCase
	logger  Logger
	metrics *metrics.Metrics
}

func NewHandler(useCase AcquireHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// WithMetrics включает счётчик отклонённых захватов по виду конфликта
func (h *Handler) WithMetrics(m *metrics.Metrics) *Handler {
	h.metrics = m
	return h
}

// Handle POST /api/v1/holds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	var req AcquireHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(ownerID)
	if err != nil {
		h.logger.Warn("POST /holds - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, err, ownerID)
		return
	}

	h.logger.Info("POST /holds - Hold acquired: hold_id=%s, owner=%d, facility=%d",
		result.Hold.ID, ownerID, result.Hold.FacilityID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// respondError переводит ошибки use case в HTTP ответы.
// Оба вида конфликтов отдаются как 409 со структурированными деталями:
// решение ждать, выбрать другой слот или переспросить — за клиентом.
func (h *Handler) respondError(w http.ResponseWriter, err error, ownerID int64) {
	var holdHeld *acquireHold.HoldHeldError
	var bookingExists *acquireHold.BookingExistsError

	switch {
	case errors.Is(err, acquireHold.ErrHoldNotFound):
		h.logger.Warn("POST /holds - Hold not found: owner=%d", ownerID)
		handlers.RespondNotFound(w, msgHoldNotFound)

	case errors.Is(err, acquireHold.ErrForbidden):
		h.logger.Warn("POST /holds - Forbidden: owner=%d", ownerID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, acquireHold.ErrInvalidInput):
		h.logger.Warn("POST /holds - Invalid input: owner=%d, error=%v", ownerID, err)
		handlers.RespondBadRequest(w, msgInvalidRange)

	case errors.As(err, &holdHeld):
		h.logger.Warn("POST /holds - Hold held: owner=%d, facility=%d", ownerID, holdHeld.FacilityID)
		h.countConflict("hold_held")
		handlers.RespondJSON(w, http.StatusConflict, &ConflictResponse{
			Code:       http.StatusConflict,
			Message:    msgHoldHeld,
			Kind:       "hold_held",
			RetryAfter: &holdHeld.RetryAfter,
		})

	case errors.As(err, &bookingExists):
		h.logger.Warn("POST /holds - Booking exists: owner=%d, facility=%d, conflicts=%d",
			ownerID, bookingExists.FacilityID, len(bookingExists.Bookings))
		h.countConflict("booking_exists")
		conflicts := make([]ConflictDetail, len(bookingExists.Bookings))
		for i, b := range bookingExists.Bookings {
			conflicts[i] = ConflictDetail{
				BookingID: b.ID,
				StartTime: b.StartTime,
				EndTime:   b.EndTime,
				Status:    string(b.Status),
			}
		}
		handlers.RespondJSON(w, http.StatusConflict, &ConflictResponse{
			Code:      http.StatusConflict,
			Message:   msgBookingExists,
			Kind:      "booking_exists",
			Conflicts: conflicts,
		})

	default:
		h.logger.Error("POST /holds - Failed to acquire hold: owner=%d, error=%v", ownerID, err)
		handlers.RespondInternalError(w)
	}
}

func (h *Handler) countConflict(kind string) {
	if h.metrics != nil {
		h.metrics.HoldConflictsTotal.WithLabelValues(kind).Inc()
	}
}
