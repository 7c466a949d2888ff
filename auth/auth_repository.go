package auth

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

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	sql := `SELECT id, name, email, phone, role, "createdAt"
            FROM "southpark-club".app_user
            WHERE email=$1;
        `

	var user User
	err := r.conn.QueryRow(ctx, sql, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Role,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with email '%v': %w", email, err)
	}

	return user, nil
}

func (r *Repository) InsertUser(ctx context.Context, user User) (User, error) {
	sql := `INSERT INTO "southpark-club".app_user(name, email, phone, role)
            VALUES ($1, $2, $3, $4)
            RETURNING id, "createdAt";
        `

	err := r.conn.QueryRow(ctx, sql,
		user.Name,
		user.Email,
		user.Phone,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user User) error {
	sql := `UPDATE "southpark-club".app_user
            SET name=$1, phone=$2
            WHERE id=$3;
        `

	tag, err := r.conn.Exec(ctx, sql, user.Name, user.Phone, user.ID)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
