package acquire_hold

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// resolveTarget вычисляет эффективные помещение и диапазон запроса,
// накладывая явно переданные поля на поля существующего hold'а
func resolveTarget(req *Request, existing *domain.SlotHold) (facilityID int64, start, end time.Time, err error) {
	if req.OwnerID <= 0 {
		return 0, time.Time{}, time.Time{}, fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if existing != nil {
		facilityID = existing.FacilityID
		start = existing.StartTime
		end = existing.EndTime
	}

	if req.FacilityID != nil {
		facilityID = *req.FacilityID
	}
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}

	if facilityID <= 0 {
		return 0, time.Time{}, time.Time{}, fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}
	if start.IsZero() {
		return 0, time.Time{}, time.Time{}, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if end.IsZero() {
		return 0, time.Time{}, time.Time{}, fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	return facilityID, start, end, nil
}
