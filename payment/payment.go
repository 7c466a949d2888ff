package payment

import (
	"math"
	"time"
)

const (
	TypeReservation = "reservation" // deposit that holds the slot
	TypeFullPayment = "full_payment"
	TypeRefund      = "refund"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Payment struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservationId"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	Receipt       string    `json:"receipt,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DepositAmount is the rounded share of the price that confirms a
// reservation without full settlement.
func DepositAmount(price float64, percentage int) float64 {
	return math.Round(price * float64(percentage) / 100)
}
