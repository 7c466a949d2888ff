package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// The CLI keeps its session and a local copy of past reservations in a
// small sqlite database under the user's config directory.

const storeFile = "clubctl.db"

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "clubctl"), nil
}

func openStore() (*sql.DB, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, storeFile))
	if err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sql.DB) error {
	createSession := `
CREATE TABLE IF NOT EXISTS session (
  token TEXT PRIMARY KEY,
  email TEXT,
  name TEXT,
  role TEXT,
  saved_at TEXT
);`

	if _, err := db.Exec(createSession); err != nil {
		return fmt.Errorf("create session table: %w", err)
	}

	createReservations := `
CREATE TABLE IF NOT EXISTS reservations (
  id TEXT PRIMARY KEY,
  sport_id TEXT,
  sport_name TEXT,
  court INTEGER,
  date TEXT,
  time TEXT,
  price REAL,
  status TEXT,
  payment_status TEXT,
  synced_at TEXT
);`

	if _, err := db.Exec(createReservations); err != nil {
		return fmt.Errorf("create reservations table: %w", err)
	}

	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_reservations_date ON reservations(date);"); err != nil {
		return fmt.Errorf("create reservations index: %w", err)
	}

	return nil
}

func saveSession(db *sql.DB, session Session) error {
	if _, err := db.Exec("DELETE FROM session;"); err != nil {
		return err
	}

	_, err := db.Exec(
		"INSERT INTO session (token, email, name, role, saved_at) VALUES (?, ?, ?, ?, ?);",
		session.Token,
		session.User.Email,
		session.User.Name,
		session.User.Role,
		time.Now().UTC().Format(time.RFC3339),
	)

	return err
}

func loadSession(db *sql.DB) (Session, bool, error) {
	row := db.QueryRow("SELECT token, email, name, role FROM session LIMIT 1;")

	var session Session
	err := row.Scan(&session.Token, &session.User.Email, &session.User.Name, &session.User.Role)

	if err == sql.ErrNoRows {
		return Session{}, false, nil
	}

	if err != nil {
		return Session{}, false, err
	}

	return session, true, nil
}

func clearSession(db *sql.DB) error {
	_, err := db.Exec("DELETE FROM session;")
	return err
}

func syncReservations(db *sql.DB, reservations []Reservation) error {
	now := time.Now().UTC().Format(time.RFC3339)

	for _, reservation := range reservations {
		_, err := db.Exec(`
INSERT INTO reservations (id, sport_id, sport_name, court, date, time, price, status, payment_status, synced_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET status=excluded.status, payment_status=excluded.payment_status, synced_at=excluded.synced_at;`,
			reservation.ID,
			reservation.SportID,
			reservation.SportName,
			reservation.CourtNumber,
			reservation.Date,
			reservation.Time,
			reservation.Price,
			reservation.Status,
			reservation.PaymentStatus,
			now,
		)

		if err != nil {
			return fmt.Errorf("cache reservation %s: %w", reservation.ID, err)
		}
	}

	return nil
}

func cachedReservations(db *sql.DB) ([]Reservation, error) {
	rows, err := db.Query(`
SELECT id, sport_id, sport_name, court, date, time, price, status, payment_status
FROM reservations
ORDER BY date, time;`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []Reservation{}

	for rows.Next() {
		var reservation Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.SportID,
			&reservation.SportName,
			&reservation.CourtNumber,
			&reservation.Date,
			&reservation.Time,
			&reservation.Price,
			&reservation.Status,
			&reservation.PaymentStatus,
		)

		if err != nil {
			return nil, err
		}

		reservations = append(reservations, reservation)
	}

	return reservations, rows.Err()
}
