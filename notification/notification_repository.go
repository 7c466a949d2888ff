package notification

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) InsertNotification(ctx context.Context, notification Notification) (Notification, error) {
	sql := `INSERT INTO "southpark-club".notification("userId", type, title, message, read)
            VALUES ($1, $2, $3, $4, FALSE)
            RETURNING id, "createdAt";
        `

	err := r.conn.QueryRow(ctx, sql,
		notification.UserID,
		notification.Type,
		notification.Title,
		notification.Message,
	).Scan(&notification.ID, &notification.CreatedAt)

	if err != nil {
		return Notification{}, fmt.Errorf("failed to insert notification: %w", err)
	}

	return notification, nil
}

func (r *Repository) GetNotificationsPerUser(ctx context.Context, userID string) ([]Notification, error) {
	sql := `SELECT id, "userId", type, title, message, read, "createdAt"
            FROM "southpark-club".notification
            WHERE "userId"=$1
            ORDER BY "createdAt" DESC;
        `

	rows, err := r.conn.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications for user '%v': %w", userID, err)
	}

	defer rows.Close()

	var notifications []Notification

	for rows.Next() {
		var notification Notification
		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Type,
			&notification.Title,
			&notification.Message,
			&notification.Read,
			&notification.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}

		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

func (r *Repository) MarkNotificationRead(ctx context.Context, id, userID string) error {
	sql := `UPDATE "southpark-club".notification
            SET read=TRUE
            WHERE id=$1 AND "userId"=$2;
        `

	tag, err := r.conn.Exec(ctx, sql, id, userID)

	if err != nil {
		return fmt.Errorf("failed to mark notification '%v' read: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
