package reservation

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// DepositPercentage is the share of the price that holds a slot.
// Club policy, identical for every sport.
const DepositPercentage = 30

// CancellationLeadTime is the minimum margin before the start of a
// reservation at which the owner may still cancel it.
const CancellationLeadTime = 24 * time.Hour

type Reservation struct {
	ID                string    `json:"id"`
	SportID           string    `json:"sportId"`
	SportName         string    `json:"sportName"`
	CourtNumber       int       `json:"courtNumber"`
	Date              string    `json:"date"` // 2006-01-02
	Time              string    `json:"time"` // 15:04
	Duration          int       `json:"duration"`
	UserID            string    `json:"userId"`
	UserName          string    `json:"userName"`
	UserEmail         string    `json:"userEmail"`
	Price             float64   `json:"price"`
	Status            string    `json:"status"`
	PaymentStatus     string    `json:"paymentStatus"`
	PaymentAmount     float64   `json:"paymentAmount"`
	PaymentPercentage int       `json:"paymentPercentage"`
	CreatedAt         time.Time `json:"createdAt"`
}

// StartsAt combines the calendar date and start time into one instant.
// A "00:00" start lands on the midnight that opens the reservation's date.
func (r Reservation) StartsAt() (time.Time, error) {
	return time.Parse("2006-01-02 15:04", r.Date+" "+r.Time)
}

// CanCancel reports whether the owner may still cancel the reservation:
// it is not already cancelled and starts at least 24 hours from now.
func CanCancel(r Reservation, now time.Time) bool {
	if r.Status == StatusCancelled {
		return false
	}

	startsAt, err := r.StartsAt()

	if err != nil {
		return false
	}

	return startsAt.Sub(now).Hours() >= CancellationLeadTime.Hours()
}
