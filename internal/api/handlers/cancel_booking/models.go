package cancel_booking

// CancelBookingRequest HTTP request model. Тело опционально.
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}
