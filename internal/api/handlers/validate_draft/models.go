package validate_draft

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// ValidateDraftRequest HTTP request model предварительной проверки черновика
type ValidateDraftRequest struct {
	FacilityID   int64   `json:"facilityId"`
	StartTime    string  `json:"startTime"` // RFC3339
	EndTime      string  `json:"endTime"`   // RFC3339
	Purpose      *string `json:"purpose,omitempty"`
	Participants int     `json:"participants"`
}

// ValidateDraftResponse HTTP response model. Valid == true тогда и только
// тогда, когда список ошибок пуст.
type ValidateDraftResponse struct {
	Valid  bool                     `json:"valid"`
	Errors []domain.ValidationError `json:"errors"`
}

// ToDraft конвертирует запрос в черновик бронирования
func (r *ValidateDraftRequest) ToDraft(userID int64) (domain.BookingDraft, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return domain.BookingDraft{}, err
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return domain.BookingDraft{}, err
	}

	return domain.BookingDraft{
		UserID:       userID,
		FacilityID:   r.FacilityID,
		StartTime:    start,
		EndTime:      end,
		Purpose:      r.Purpose,
		Participants: r.Participants,
	}, nil
}

// FromViolations конвертирует список нарушений в HTTP response
func FromViolations(violations []domain.ValidationError) *ValidateDraftResponse {
	if violations == nil {
		violations = []domain.ValidationError{}
	}
	return &ValidateDraftResponse{
		Valid:  len(violations) == 0,
		Errors: violations,
	}
}
