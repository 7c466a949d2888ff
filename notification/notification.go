package notification

import "time"

const (
	KindReservationConfirmed = "reservation_confirmed"
	KindReminder             = "reminder"
	KindCancellation         = "cancellation"
	KindAdminAlert           = "admin_alert"
)

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
