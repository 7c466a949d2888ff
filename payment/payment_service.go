package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/santiagoprado21/southpark-club-backend/auth"
	"github.com/santiagoprado21/southpark-club-backend/notification"
	"github.com/santiagoprado21/southpark-club-backend/reservation"
)

type PaymentRepository interface {
	InsertPayment(ctx context.Context, payment Payment) (Payment, error)
	GetPaymentsPerReservation(ctx context.Context, reservationID string) ([]Payment, error)
	GetPayments(ctx context.Context) ([]Payment, error)
}

type ReservationStore interface {
	GetReservationByID(ctx context.Context, id string) (reservation.Reservation, error)
	SetPaymentState(ctx context.Context, id string, paymentStatus string, paymentAmount float64, status string) error
}

type Notifier interface {
	Notify(ctx context.Context, userID, kind, title, message string) error
}

type Service struct {
	repo         PaymentRepository
	reservations ReservationStore
	notifier     Notifier
}

func NewService(repo PaymentRepository, reservations ReservationStore, notifier Notifier) *Service {
	return &Service{repo: repo, reservations: reservations, notifier: notifier}
}

// SubmitPayment captures a simulated payment against a reservation. The
// amount is derived server-side from the payment type: the deposit share
// for 'reservation', the outstanding balance for 'full_payment'. A
// completed payment always forces the reservation to confirmed.
func (s *Service) SubmitPayment(ctx context.Context, reservationID, payType string, user auth.User) (Payment, error) {
	r, err := s.reservations.GetReservationByID(ctx, reservationID)

	if err != nil {
		return Payment{}, err
	}

	if !user.IsAdmin() && r.UserID != user.ID {
		return Payment{}, reservation.ErrNotAllowed
	}

	if r.Status == reservation.StatusCancelled {
		return Payment{}, reservation.ErrInvalidReservationState
	}

	var amount float64
	var paymentStatus string

	switch payType {
	case TypeReservation:
		if r.PaymentStatus != reservation.PaymentPending {
			return Payment{}, ErrAlreadySettled
		}

		amount = DepositAmount(r.Price, r.PaymentPercentage)
		paymentStatus = reservation.PaymentPartial
	case TypeFullPayment:
		if r.PaymentStatus == reservation.PaymentPaid || r.PaymentStatus == reservation.PaymentRefunded {
			return Payment{}, ErrAlreadySettled
		}

		amount = r.Price - r.PaymentAmount
		paymentStatus = reservation.PaymentPaid
	default:
		return Payment{}, fmt.Errorf("%w: '%v'", ErrInvalidPaymentType, payType)
	}

	payment := Payment{
		ReservationID: r.ID,
		Amount:        amount,
		Type:          payType,
		Status:        StatusCompleted,
		Receipt:       newReceipt(),
	}

	payment, err = s.repo.InsertPayment(ctx, payment)

	if err != nil {
		return Payment{}, err
	}

	err = s.reservations.SetPaymentState(ctx, r.ID, paymentStatus, r.PaymentAmount+amount, reservation.StatusConfirmed)

	if err != nil {
		return Payment{}, err
	}

	s.notify(ctx, r.UserID, notification.KindReservationConfirmed, "Pago Recibido",
		fmt.Sprintf("Tu pago de $%v para %v el %v ha sido procesado.", amount, r.SportName, r.Date))

	return payment, nil
}

// RefundReservation writes the refund record for a cancelled reservation.
// The payment state of the reservation itself is owned by the caller.
func (s *Service) RefundReservation(ctx context.Context, r reservation.Reservation) error {
	_, err := s.repo.InsertPayment(ctx, Payment{
		ReservationID: r.ID,
		Amount:        r.PaymentAmount,
		Type:          TypeRefund,
		Status:        StatusCompleted,
		Receipt:       newReceipt(),
	})

	if err != nil {
		return fmt.Errorf("failed to record refund: %w", err)
	}

	return nil
}

func (s *Service) FindPaymentsPerReservation(ctx context.Context, reservationID string, user auth.User) ([]Payment, error) {
	r, err := s.reservations.GetReservationByID(ctx, reservationID)

	if err != nil {
		return nil, err
	}

	if !user.IsAdmin() && r.UserID != user.ID {
		return nil, reservation.ErrNotAllowed
	}

	return s.repo.GetPaymentsPerReservation(ctx, reservationID)
}

func (s *Service) ListPayments(ctx context.Context) ([]Payment, error) {
	return s.repo.GetPayments(ctx)
}

func (s *Service) notify(ctx context.Context, userID, kind, title, message string) {
	if s.notifier == nil {
		return
	}

	s.notifier.Notify(ctx, userID, kind, title, message)
}

func newReceipt() string {
	return "REC-" + uuid.NewString()
}
