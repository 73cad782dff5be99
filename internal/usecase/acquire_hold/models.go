package acquire_hold

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модель запроса на захват или продление hold'а.
//
// HoldID == nil — новый hold: FacilityID, StartTime и EndTime обязательны,
// прежний hold владельца (если был) вытесняется.
// HoldID != nil — продление: незаполненные поля берутся из существующего
// hold'а, что позволяет одной операцией продлить тот же слот или
// переехать на новый.
type Request struct {
	HoldID     *string
	FacilityID *int64
	StartTime  *time.Time
	EndTime    *time.Time
	OwnerID    int64
}

// Response модель ответа с выданным hold'ом.
// ExpiresAt — честное время смерти hold'а (now + TTL).
// RefreshAfter — рекомендованный момент продления (ExpiresAt - grace);
// клиент планирует refresh сам, автоматического продления нет.
type Response struct {
	Hold         domain.SlotHold
	RefreshAfter time.Time
}
