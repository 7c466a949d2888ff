package payment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) InsertPayment(ctx context.Context, payment Payment) (Payment, error) {
	sql := `INSERT INTO "southpark-club".payment("reservationId", amount, type, status, receipt)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id, "createdAt";
        `

	err := r.conn.QueryRow(ctx, sql,
		payment.ReservationID,
		payment.Amount,
		payment.Type,
		payment.Status,
		payment.Receipt,
	).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		return Payment{}, fmt.Errorf("failed to insert payment: %w", err)
	}

	return payment, nil
}

func (r *Repository) GetPaymentsPerReservation(ctx context.Context, reservationID string) ([]Payment, error) {
	sql := `SELECT id, "reservationId", amount, type, status, receipt, "createdAt"
            FROM "southpark-club".payment
            WHERE "reservationId"=$1
            ORDER BY "createdAt";
        `

	rows, err := r.conn.Query(ctx, sql, reservationID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments for reservation '%v': %w", reservationID, err)
	}

	defer rows.Close()

	return scanPayments(rows)
}

func (r *Repository) GetPayments(ctx context.Context) ([]Payment, error) {
	sql := `SELECT id, "reservationId", amount, type, status, receipt, "createdAt"
            FROM "southpark-club".payment
            ORDER BY "createdAt" DESC;
        `

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	defer rows.Close()

	return scanPayments(rows)
}

func scanPayments(rows pgx.Rows) ([]Payment, error) {
	var payments []Payment

	for rows.Next() {
		var payment Payment
		err := rows.Scan(
			&payment.ID,
			&payment.ReservationID,
			&payment.Amount,
			&payment.Type,
			&payment.Status,
			&payment.Receipt,
			&payment.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}

		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}
