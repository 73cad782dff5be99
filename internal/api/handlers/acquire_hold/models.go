package acquire_hold

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	acquireHold "github.com/m04kA/SMC-RoomBookingService/internal/usecase/acquire_hold"
)

// AcquireHoldRequest HTTP request model.
// holdId задаётся при продлении; незаполненные поля берутся из
// существующего hold'а.
type AcquireHoldRequest struct {
	HoldID     *string `json:"holdId,omitempty"`
	FacilityID *int64  `json:"facilityId,omitempty"`
	StartTime  *string `json:"startTime,omitempty"` // RFC3339
	EndTime    *string `json:"endTime,omitempty"`   // RFC3339
}

// HoldResponse HTTP response model.
// Времена сериализуются в RFC3339: hold должен пережить сетевую границу
// без потерь (id, помещение, диапазон и срок жизни восстанавливаются точно).
type HoldResponse struct {
	ID           string    `json:"id"`
	FacilityID   int64     `json:"facilityId"`
	OwnerID      int64     `json:"ownerId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	ExpiresAt    time.Time `json:"expiresAt"`
	RefreshAfter time.Time `json:"refreshAfter"`
}

// ConflictDetail сведения о мешающем бронировании
type ConflictDetail struct {
	BookingID int64     `json:"bookingId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
}

// ConflictResponse тело ответа 409.
// kind: hold_held — слот удерживает другой пользователь (retryAfter);
// booking_exists — диапазон занят сохранённым бронированием (conflicts).
type ConflictResponse struct {
	Code       int              `json:"code"`
	Message    string           `json:"message"`
	Kind       string           `json:"kind"`
	RetryAfter *time.Time       `json:"retryAfter,omitempty"`
	Conflicts  []ConflictDetail `json:"conflicts,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AcquireHoldRequest) ToUseCaseRequest(ownerID int64) (*acquireHold.Request, error) {
	req := &acquireHold.Request{
		HoldID:     r.HoldID,
		FacilityID: r.FacilityID,
		OwnerID:    ownerID,
	}

	if r.StartTime != nil {
		start, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parse startTime: %w", err)
		}
		req.StartTime = &start
	}

	if r.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parse endTime: %w", err)
		}
		req.EndTime = &end
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *acquireHold.Response) *HoldResponse {
	return &HoldResponse{
		ID:           resp.Hold.ID,
		FacilityID:   resp.Hold.FacilityID,
		OwnerID:      resp.Hold.OwnerID,
		StartTime:    resp.Hold.StartTime,
		EndTime:      resp.Hold.EndTime,
		ExpiresAt:    resp.Hold.ExpiresAt,
		RefreshAfter: resp.RefreshAfter,
	}
}

// ToDomainHold восстанавливает доменную модель из HTTP представления
// (используется клиентами и в тестах round-trip)
func (r *HoldResponse) ToDomainHold() domain.SlotHold {
	return domain.SlotHold{
		ID:         r.ID,
		FacilityID: r.FacilityID,
		OwnerID:    r.OwnerID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		ExpiresAt:  r.ExpiresAt,
	}
}
