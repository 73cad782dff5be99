package find_next_slot

import (
	"time"

	findNextSlot "github.com/m04kA/SMC-RoomBookingService/internal/usecase/find_next_slot"
)

// NextSlotResponse HTTP response model. Slot == null означает, что в
// пределах горизонта поиска свободных слотов нет.
type NextSlotResponse struct {
	FacilityID int64         `json:"facilityId"`
	Slot       *SlotResponse `json:"slot"`
}

// SlotResponse модель найденного свободного слота
type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findNextSlot.Response) *NextSlotResponse {
	out := &NextSlotResponse{
		FacilityID: resp.FacilityID,
	}

	if resp.Slot != nil {
		out.Slot = &SlotResponse{
			Start: resp.Slot.Start,
			End:   resp.Slot.End,
		}
	}

	return out
}
