package domain

// Default schedule values
const (
	DefaultSlotMinutes = 30
	DefaultOpenTime    = "07:30"
	DefaultCloseTime   = "19:00"
)

// Hold lifetime defaults
const (
	DefaultHoldTTLSeconds          = 120 // 2 minutes
	DefaultHoldRefreshGraceSeconds = 30
)

// Duration policy bounds by facility class (minutes)
const (
	StandardMinDurationMinutes   = 30
	StandardMaxDurationMinutes   = 240 // 4 hours
	ConferenceMinDurationMinutes = 30
	ConferenceMaxDurationMinutes = 480 // 8 hours
)

// Next-slot search is bounded to keep the scan cheap
const DefaultNextSlotSearchDays = 2

// Business validation constants
const (
	MaxPurposeLength            = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов бронирований, блокирующих слот
// Используется при подсчёте доступности и проверке конфликтов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// InactiveStatuses список статусов, не влияющих на доступность
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelledByUser,
	StatusCancelledByAdmin,
}
