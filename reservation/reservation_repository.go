package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const reservationColumns = `id, "sportId", "sportName", "courtNumber", date, "time", duration,
            "userId", "userName", "userEmail", price, status, "paymentStatus", "paymentAmount", "paymentPercentage", "createdAt"`

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func scanReservation(row pgx.Row) (Reservation, error) {
	var reservation Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.SportID,
		&reservation.SportName,
		&reservation.CourtNumber,
		&reservation.Date,
		&reservation.Time,
		&reservation.Duration,
		&reservation.UserID,
		&reservation.UserName,
		&reservation.UserEmail,
		&reservation.Price,
		&reservation.Status,
		&reservation.PaymentStatus,
		&reservation.PaymentAmount,
		&reservation.PaymentPercentage,
		&reservation.CreatedAt,
	)

	return reservation, err
}

func (r *Repository) GetReservations(ctx context.Context) ([]Reservation, error) {
	sql := fmt.Sprintf(`SELECT %v
            FROM "southpark-club".reservation
            ORDER BY "createdAt" DESC;
        `, reservationColumns)

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	defer rows.Close()

	var reservations []Reservation

	for rows.Next() {
		reservation, err := scanReservation(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning reservation row: %w", err)
		}

		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return reservations, nil
}

func (r *Repository) GetReservationByID(ctx context.Context, id string) (Reservation, error) {
	sql := fmt.Sprintf(`SELECT %v
            FROM "southpark-club".reservation
            WHERE id=$1;
        `, reservationColumns)

	reservation, err := scanReservation(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Reservation{}, ErrReservationNotFound
	}

	if err != nil {
		return Reservation{}, fmt.Errorf("failed to fetch reservation with id %v: %w", id, err)
	}

	return reservation, nil
}

func (r *Repository) GetReservationsPerUser(ctx context.Context, userID string) ([]Reservation, error) {
	sql := fmt.Sprintf(`SELECT %v
            FROM "southpark-club".reservation
            WHERE "userId"=$1
            ORDER BY "createdAt" DESC;
        `, reservationColumns)

	rows, err := r.conn.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for user '%v': %w", userID, err)
	}

	defer rows.Close()

	var reservations []Reservation

	for rows.Next() {
		reservation, err := scanReservation(rows)

		if err != nil {
			return nil, fmt.Errorf("failed to scan reservations for user '%v': %w", userID, err)
		}

		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return reservations, nil
}

// InsertReservation writes the reservation only if no non-cancelled
// reservation holds the same (sport, date, time, court) tuple. The guard
// and the insert run as one statement so the invariant holds under
// concurrent writers.
func (r *Repository) InsertReservation(ctx context.Context, reservation Reservation) (Reservation, error) {
	sql := `INSERT INTO "southpark-club".reservation(
                "sportId", "sportName", "courtNumber", date, "time", duration,
                "userId", "userName", "userEmail", price, status, "paymentStatus", "paymentAmount", "paymentPercentage")
            SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
            WHERE NOT EXISTS (
                SELECT 1 FROM "southpark-club".reservation
                WHERE "sportId"=$1 AND date=$4 AND "time"=$5 AND "courtNumber"=$3 AND status <> 'cancelled'
            )
            RETURNING id, "createdAt";
        `

	err := r.conn.QueryRow(ctx, sql,
		reservation.SportID,
		reservation.SportName,
		reservation.CourtNumber,
		reservation.Date,
		reservation.Time,
		reservation.Duration,
		reservation.UserID,
		reservation.UserName,
		reservation.UserEmail,
		reservation.Price,
		reservation.Status,
		reservation.PaymentStatus,
		reservation.PaymentAmount,
		reservation.PaymentPercentage,
	).Scan(&reservation.ID, &reservation.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return Reservation{}, ErrSlotConflict
	}

	if err != nil {
		return Reservation{}, fmt.Errorf("failed to insert reservation: %w", err)
	}

	return reservation, nil
}

func (r *Repository) SlotTaken(ctx context.Context, sportID, date, timeOfDay string, courtNumber int) (bool, error) {
	sql := `SELECT EXISTS (
                SELECT 1 FROM "southpark-club".reservation
                WHERE "sportId"=$1 AND date=$2 AND "time"=$3 AND "courtNumber"=$4 AND status <> 'cancelled'
            );
        `

	var taken bool
	err := r.conn.QueryRow(ctx, sql, sportID, date, timeOfDay, courtNumber).Scan(&taken)

	if err != nil {
		return false, fmt.Errorf("failed to check slot occupancy: %w", err)
	}

	return taken, nil
}

// OccupiedSlots tallies non-cancelled reservations for a sport and date,
// keyed by "{time}-{courtNumber}". Display aggregation only.
func (r *Repository) OccupiedSlots(ctx context.Context, sportID, date string) (map[string]int, error) {
	sql := `SELECT "time", "courtNumber", COUNT(*)
            FROM "southpark-club".reservation
            WHERE "sportId"=$1 AND date=$2 AND status <> 'cancelled'
            GROUP BY "time", "courtNumber";
        `

	rows, err := r.conn.Query(ctx, sql, sportID, date)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch occupied slots: %w", err)
	}

	defer rows.Close()

	occupied := map[string]int{}

	for rows.Next() {
		var timeOfDay string
		var courtNumber int
		var count int
		err := rows.Scan(&timeOfDay, &courtNumber, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan occupied slot row: %w", err)
		}

		occupied[SlotKey(timeOfDay, courtNumber)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating occupied slot rows: %w", err)
	}

	return occupied, nil
}

func (r *Repository) SetReservationStatus(ctx context.Context, id string, status string) error {
	sql := `UPDATE "southpark-club".reservation
            SET status=$1
            WHERE id=$2;
        `

	tag, err := r.conn.Exec(ctx, sql, status, id)

	if err != nil {
		return fmt.Errorf("failed to update reservation '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// SetPaymentState records the outcome of applying a payment: the new
// payment status, the accumulated amount and the forced overall status.
func (r *Repository) SetPaymentState(ctx context.Context, id string, paymentStatus string, paymentAmount float64, status string) error {
	sql := `UPDATE "southpark-club".reservation
            SET "paymentStatus"=$1, "paymentAmount"=$2, status=$3
            WHERE id=$4;
        `

	tag, err := r.conn.Exec(ctx, sql, paymentStatus, paymentAmount, status, id)

	if err != nil {
		return fmt.Errorf("failed to update reservation '%v' payment state: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) UpdateReservation(ctx context.Context, reservation Reservation) error {
	sql := `UPDATE "southpark-club".reservation
            SET
                "courtNumber"=$1,
                date=$2,
                "time"=$3,
                duration=$4,
                price=$5,
                status=$6,
                "paymentStatus"=$7,
                "paymentAmount"=$8
            WHERE id=$9;
        `

	tag, err := r.conn.Exec(ctx, sql,
		reservation.CourtNumber,
		reservation.Date,
		reservation.Time,
		reservation.Duration,
		reservation.Price,
		reservation.Status,
		reservation.PaymentStatus,
		reservation.PaymentAmount,
		reservation.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) DeleteReservation(ctx context.Context, id string) error {
	sql := `DELETE FROM "southpark-club".reservation WHERE id=$1;`

	tag, err := r.conn.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to delete reservation '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type SportReservationCount struct {
	Sport string `json:"sport"`
	Count int    `json:"reservationCount"`
}

type WeekDayReservationCount struct {
	WeekDay string `json:"dayOfWeek"`
	Count   int    `json:"reservationCount"`
}

func (r *Repository) GetReservationCountPerSport(ctx context.Context) ([]SportReservationCount, error) {
	sql := `
		SELECT reservation."sportName", COUNT(*) as reservation_count FROM "southpark-club".reservation
		WHERE reservation.status <> 'cancelled'
		GROUP BY reservation."sportName"
		ORDER BY reservation_count DESC
	`

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation count per sport: %w", err)
	}

	defer rows.Close()

	stats := []SportReservationCount{}

	for rows.Next() {
		var sportName string
		var count int
		err := rows.Scan(&sportName, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, SportReservationCount{Sport: sportName, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return stats, err
}

func (r *Repository) GetReservationCountPerWeekDay(ctx context.Context) ([]WeekDayReservationCount, error) {
	sql := `
		SELECT
			TO_CHAR(date::date, 'Day') as day_of_week,
			COUNT(*) as reservation_count
		FROM
			"southpark-club".reservation
		WHERE reservation.status <> 'cancelled'
		GROUP BY
			TO_CHAR(date::date, 'Day')
		ORDER BY
			reservation_count DESC;
	`

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation count per week day: %w", err)
	}

	defer rows.Close()

	stats := []WeekDayReservationCount{}

	for rows.Next() {
		var weekDay string
		var count int
		err := rows.Scan(&weekDay, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, WeekDayReservationCount{WeekDay: weekDay, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return stats, err
}

func (r *Repository) GetReservationCountPerSportInPeriod(ctx context.Context, start, end time.Time) ([]SportReservationCount, error) {
	sql := `
		SELECT reservation."sportName", COUNT(*) as reservation_count FROM "southpark-club".reservation
		WHERE reservation.date::date BETWEEN $1 AND $2
		AND reservation.status <> 'cancelled'
		GROUP BY reservation."sportName"
		ORDER BY reservation_count DESC
	`

	rows, err := r.conn.Query(ctx, sql, start, end)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation count per sport: %w", err)
	}

	defer rows.Close()

	stats := []SportReservationCount{}

	for rows.Next() {
		var sportName string
		var count int
		err := rows.Scan(&sportName, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, SportReservationCount{Sport: sportName, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return stats, err
}
