package sport

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) GetSports(ctx context.Context) ([]Sport, error) {
	sql := `SELECT id, name, courts, price, duration, enabled, "scheduleStart", "scheduleEnd"
            FROM "southpark-club".sport
            ORDER BY name;
        `

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch sports: %w", err)
	}

	defer rows.Close()

	var sports []Sport

	for rows.Next() {
		var sport Sport
		err := rows.Scan(
			&sport.ID,
			&sport.Name,
			&sport.Courts,
			&sport.Price,
			&sport.Duration,
			&sport.Enabled,
			&sport.Schedule.Start,
			&sport.Schedule.End,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning sport row: %w", err)
		}

		sports = append(sports, sport)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sport rows: %w", err)
	}

	for i := range sports {
		maintenance, err := r.getMaintenanceWindows(ctx, sports[i].ID)

		if err != nil {
			return nil, err
		}

		sports[i].Maintenance = maintenance
	}

	return sports, nil
}

func (r *Repository) GetSportByID(ctx context.Context, id string) (Sport, error) {
	sql := `SELECT id, name, courts, price, duration, enabled, "scheduleStart", "scheduleEnd"
            FROM "southpark-club".sport
            WHERE id=$1;
        `

	var sport Sport
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&sport.ID,
		&sport.Name,
		&sport.Courts,
		&sport.Price,
		&sport.Duration,
		&sport.Enabled,
		&sport.Schedule.Start,
		&sport.Schedule.End,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Sport{}, ErrSportNotFound
	}

	if err != nil {
		return Sport{}, fmt.Errorf("failed to fetch sport with id %v: %w", id, err)
	}

	maintenance, err := r.getMaintenanceWindows(ctx, sport.ID)

	if err != nil {
		return Sport{}, err
	}

	sport.Maintenance = maintenance

	return sport, nil
}

func (r *Repository) UpdateSport(ctx context.Context, sport Sport) error {
	sql := `UPDATE "southpark-club".sport
            SET
                name=$1,
                courts=$2,
                price=$3,
                duration=$4,
                enabled=$5,
                "scheduleStart"=$6,
                "scheduleEnd"=$7
            WHERE id=$8;
        `

	tag, err := r.conn.Exec(ctx, sql,
		sport.Name,
		sport.Courts,
		sport.Price,
		sport.Duration,
		sport.Enabled,
		sport.Schedule.Start,
		sport.Schedule.End,
		sport.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update sport: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSportNotFound
	}

	return nil
}

func (r *Repository) getMaintenanceWindows(ctx context.Context, sportID string) ([]MaintenanceWindow, error) {
	sql := `SELECT day, "start", "end"
            FROM "southpark-club".maintenance_window
            WHERE "sportId"=$1;
        `

	rows, err := r.conn.Query(ctx, sql, sportID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch maintenance windows for sport '%v': %w", sportID, err)
	}

	defer rows.Close()

	var windows []MaintenanceWindow

	for rows.Next() {
		var window MaintenanceWindow
		err := rows.Scan(&window.Day, &window.Start, &window.End)

		if err != nil {
			return nil, fmt.Errorf("error scanning maintenance window row: %w", err)
		}

		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating maintenance window rows: %w", err)
	}

	return windows, nil
}
