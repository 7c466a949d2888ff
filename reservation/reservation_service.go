package reservation

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/santiagoprado21/southpark-club-backend/auth"
	"github.com/santiagoprado21/southpark-club-backend/notification"
	"github.com/santiagoprado21/southpark-club-backend/sport"
)

type ReservationRepository interface {
	GetReservations(ctx context.Context) ([]Reservation, error)
	GetReservationByID(ctx context.Context, id string) (Reservation, error)
	GetReservationsPerUser(ctx context.Context, userID string) ([]Reservation, error)
	InsertReservation(ctx context.Context, reservation Reservation) (Reservation, error)
	SlotTaken(ctx context.Context, sportID, date, timeOfDay string, courtNumber int) (bool, error)
	OccupiedSlots(ctx context.Context, sportID, date string) (map[string]int, error)
	SetReservationStatus(ctx context.Context, id string, status string) error
	SetPaymentState(ctx context.Context, id string, paymentStatus string, paymentAmount float64, status string) error
	UpdateReservation(ctx context.Context, reservation Reservation) error
	DeleteReservation(ctx context.Context, id string) error
	GetReservationCountPerSport(ctx context.Context) ([]SportReservationCount, error)
	GetReservationCountPerWeekDay(ctx context.Context) ([]WeekDayReservationCount, error)
	GetReservationCountPerSportInPeriod(ctx context.Context, start, end time.Time) ([]SportReservationCount, error)
}

type SportDirectory interface {
	GetSportByID(ctx context.Context, id string) (sport.Sport, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID, kind, title, message string) error
}

// Refunder writes the refund record when a paid reservation is cancelled.
type Refunder interface {
	RefundReservation(ctx context.Context, reservation Reservation) error
}

type Service struct {
	repo     ReservationRepository
	sports   SportDirectory
	notifier Notifier
	refunds  Refunder
}

func NewService(repo ReservationRepository, sports SportDirectory, notifier Notifier, refunds Refunder) *Service {
	return &Service{repo: repo, sports: sports, notifier: notifier, refunds: refunds}
}

// Slot is one bookable start time for a given date and court.
type Slot struct {
	Time        string `json:"time"`
	Occupied    bool   `json:"occupied"`
	Maintenance bool   `json:"maintenance"`
}

type CreateRequest struct {
	SportID     string `json:"sportId"`
	CourtNumber int    `json:"courtNumber"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

func (s *Service) AvailableSlots(ctx context.Context, sportID, date string, courtNumber int) ([]Slot, error) {
	day, err := time.Parse(time.DateOnly, date)

	if err != nil {
		return nil, fmt.Errorf("%w: invalid date '%v'", ErrValidation, date)
	}

	sp, err := s.sports.GetSportByID(ctx, sportID)

	if err != nil {
		return nil, err
	}

	if courtNumber < 1 || courtNumber > sp.Courts {
		return nil, fmt.Errorf("%w: court number must be between 1 and %v", ErrValidation, sp.Courts)
	}

	occupied, err := s.repo.OccupiedSlots(ctx, sportID, date)

	if err != nil {
		return nil, err
	}

	weekday := day.Weekday().String()
	slots := []Slot{}

	for _, timeOfDay := range TimeSlots(sp.Schedule) {
		slots = append(slots, Slot{
			Time:        timeOfDay,
			Occupied:    occupied[SlotKey(timeOfDay, courtNumber)] > 0,
			Maintenance: UnderMaintenance(sp.Maintenance, weekday, timeOfDay),
		})
	}

	return slots, nil
}

func (s *Service) OccupiedSlotTally(ctx context.Context, sportID, date string) (map[string]int, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, fmt.Errorf("%w: invalid date '%v'", ErrValidation, date)
	}

	if _, err := s.sports.GetSportByID(ctx, sportID); err != nil {
		return nil, err
	}

	return s.repo.OccupiedSlots(ctx, sportID, date)
}

func (s *Service) CreateReservation(ctx context.Context, req CreateRequest, user auth.User) (Reservation, error) {
	if len(req.SportID) == 0 || len(req.Date) == 0 || len(req.Time) == 0 || req.CourtNumber == 0 {
		return Reservation{}, fmt.Errorf("%w: sportId, courtNumber, date and time are required", ErrValidation)
	}

	if _, err := time.Parse(time.DateOnly, req.Date); err != nil {
		return Reservation{}, fmt.Errorf("%w: invalid date '%v'", ErrValidation, req.Date)
	}

	sp, err := s.sports.GetSportByID(ctx, req.SportID)

	if err != nil {
		return Reservation{}, err
	}

	if !sp.Enabled {
		return Reservation{}, sport.ErrSportDisabled
	}

	if req.CourtNumber < 1 || req.CourtNumber > sp.Courts {
		return Reservation{}, fmt.Errorf("%w: court number must be between 1 and %v", ErrValidation, sp.Courts)
	}

	if !slices.Contains(TimeSlots(sp.Schedule), req.Time) {
		return Reservation{}, fmt.Errorf("%w: '%v' is not a bookable start time", ErrValidation, req.Time)
	}

	taken, err := s.repo.SlotTaken(ctx, req.SportID, req.Date, req.Time, req.CourtNumber)

	if err != nil {
		return Reservation{}, err
	}

	if taken {
		return Reservation{}, ErrSlotConflict
	}

	reservation := Reservation{
		SportID:           sp.ID,
		SportName:         sp.Name,
		CourtNumber:       req.CourtNumber,
		Date:              req.Date,
		Time:              req.Time,
		Duration:          sp.Duration,
		UserID:            user.ID,
		UserName:          user.Name,
		UserEmail:         user.Email,
		Price:             sp.Price,
		Status:            StatusConfirmed,
		PaymentStatus:     PaymentPending,
		PaymentAmount:     0,
		PaymentPercentage: DepositPercentage,
	}

	// The insert re-checks the slot, so a race between the check above and
	// the commit still cannot double-book.
	reservation, err = s.repo.InsertReservation(ctx, reservation)

	if err != nil {
		return Reservation{}, err
	}

	s.notify(ctx, user.ID, notification.KindReservationConfirmed, "Reserva Creada",
		fmt.Sprintf("Tu reserva para %v el %v a las %v ha sido creada. Completa el pago para confirmarla.",
			reservation.SportName, reservation.Date, reservation.Time))

	return reservation, nil
}

func (s *Service) CancelReservation(ctx context.Context, id string, user auth.User) error {
	reservation, err := s.repo.GetReservationByID(ctx, id)

	if err != nil {
		return err
	}

	if reservation.Status == StatusCancelled {
		return ErrInvalidReservationState
	}

	if !user.IsAdmin() && reservation.UserID != user.ID {
		return ErrNotAllowed
	}

	// Admins may cancel at any time; owners only outside the lead window.
	if !user.IsAdmin() && !CanCancel(reservation, time.Now()) {
		return ErrCancellationWindow
	}

	err = s.repo.SetReservationStatus(ctx, id, StatusCancelled)

	if err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if reservation.PaymentStatus == PaymentPartial || reservation.PaymentStatus == PaymentPaid {
		err = s.repo.SetPaymentState(ctx, id, PaymentRefunded, reservation.PaymentAmount, StatusCancelled)

		if err != nil {
			return err
		}

		if s.refunds != nil {
			if err := s.refunds.RefundReservation(ctx, reservation); err != nil {
				return err
			}
		}
	}

	s.notify(ctx, reservation.UserID, notification.KindCancellation, "Reserva Cancelada",
		fmt.Sprintf("Tu reserva para %v el %v a las %v ha sido cancelada. Se procesará el reembolso según nuestras políticas.",
			reservation.SportName, reservation.Date, reservation.Time))

	return nil
}

func (s *Service) ListReservations(ctx context.Context) ([]Reservation, error) {
	return s.repo.GetReservations(ctx)
}

func (s *Service) FindReservationByID(ctx context.Context, id string) (Reservation, error) {
	return s.repo.GetReservationByID(ctx, id)
}

func (s *Service) FindReservationsPerUser(ctx context.Context, userID string) ([]Reservation, error) {
	return s.repo.GetReservationsPerUser(ctx, userID)
}

func (s *Service) SetReservationStatus(ctx context.Context, id, status string) error {
	if status != StatusPending && status != StatusConfirmed && status != StatusCancelled {
		return fmt.Errorf("%w: unknown status '%v'", ErrValidation, status)
	}

	reservation, err := s.repo.GetReservationByID(ctx, id)

	if err != nil {
		return err
	}

	if reservation.Status == status {
		return ErrInvalidReservationState
	}

	err = s.repo.SetReservationStatus(ctx, id, status)

	if err != nil {
		return err
	}

	s.notify(ctx, reservation.UserID, notification.KindAdminAlert, "Reserva Actualizada",
		fmt.Sprintf("El estado de tu reserva para %v el %v cambió a '%v'.",
			reservation.SportName, reservation.Date, status))

	return nil
}

func (s *Service) ModifyReservation(ctx context.Context, updated Reservation) error {
	reservation, err := s.repo.GetReservationByID(ctx, updated.ID)

	if err != nil {
		return err
	}

	if updated.CourtNumber < 1 {
		return fmt.Errorf("%w: court number must be at least 1", ErrValidation)
	}

	reservation.CourtNumber = updated.CourtNumber
	reservation.Date = updated.Date
	reservation.Time = updated.Time
	reservation.Duration = updated.Duration
	reservation.Price = updated.Price
	reservation.Status = updated.Status
	reservation.PaymentStatus = updated.PaymentStatus
	reservation.PaymentAmount = updated.PaymentAmount

	return s.repo.UpdateReservation(ctx, reservation)
}

func (s *Service) DeleteReservation(ctx context.Context, id string) error {
	return s.repo.DeleteReservation(ctx, id)
}

func (s *Service) GetReservationCountPerSport(ctx context.Context) ([]SportReservationCount, error) {
	return s.repo.GetReservationCountPerSport(ctx)
}

func (s *Service) GetReservationCountPerWeekDay(ctx context.Context) ([]WeekDayReservationCount, error) {
	return s.repo.GetReservationCountPerWeekDay(ctx)
}

func (s *Service) GetReservationCountPerSportInPeriod(ctx context.Context, start, end time.Time) ([]SportReservationCount, error) {
	return s.repo.GetReservationCountPerSportInPeriod(ctx, start, end)
}

func (s *Service) notify(ctx context.Context, userID, kind, title, message string) {
	if s.notifier == nil {
		return
	}

	s.notifier.Notify(ctx, userID, kind, title, message)
}
