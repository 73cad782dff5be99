package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модель запроса на создание бронирования.
// HoldID — опциональная ссылка на hold, под которым пользователь
// заполнял форму; после успешного коммита hold освобождается.
type Request struct {
	UserID       int64
	FacilityID   int64
	StartTime    time.Time
	EndTime      time.Time
	Purpose      *string
	Participants int
	HoldID       *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	UserID       int64
	FacilityID   int64
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	Purpose      *string
	Participants int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// toDraft конвертирует запрос в черновик для движка валидации
func (r *Request) toDraft() domain.BookingDraft {
	return domain.BookingDraft{
		UserID:       r.UserID,
		FacilityID:   r.FacilityID,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Purpose:      r.Purpose,
		Participants: r.Participants,
	}
}
