package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// HoldID — опциональная ссылка на hold, под которым заполнялась форма.
type CreateBookingRequest struct {
	FacilityID   int64   `json:"facilityId"`
	StartTime    string  `json:"startTime"` // RFC3339
	EndTime      string  `json:"endTime"`   // RFC3339
	Purpose      *string `json:"purpose,omitempty"`
	Participants int     `json:"participants"`
	HoldID       *string `json:"holdId,omitempty"`
}

// BookingResponse HTTP response model созданного бронирования
type BookingResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	FacilityID   int64     `json:"facilityId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	Purpose      *string   `json:"purpose,omitempty"`
	Participants int       `json:"participants"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ValidationFailedResponse ответ 400 с полным списком нарушенных правил
type ValidationFailedResponse struct {
	Code    int                      `json:"code"`
	Message string                   `json:"message"`
	Errors  []domain.ValidationError `json:"errors"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		FacilityID:   r.FacilityID,
		StartTime:    start,
		EndTime:      end,
		Purpose:      r.Purpose,
		Participants: r.Participants,
		HoldID:       r.HoldID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		FacilityID:   resp.FacilityID,
		StartTime:    resp.StartTime,
		EndTime:      resp.EndTime,
		Status:       resp.Status,
		Purpose:      resp.Purpose,
		Participants: resp.Participants,
		CreatedAt:    resp.CreatedAt,
		UpdatedAt:    resp.UpdatedAt,
	}
}
