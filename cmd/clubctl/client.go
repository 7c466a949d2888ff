package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

// Client is a thin JSON client for the booking server.
type Client struct {
	HTTP        *http.Client
	BaseURL     string
	AccessToken string
}

func NewClient(baseURL string) *Client {
	if len(baseURL) == 0 {
		baseURL = defaultBaseURL
	}

	return &Client{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: baseURL,
	}
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Sport struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Courts   int     `json:"courts"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Enabled  bool    `json:"enabled"`
}

type Slot struct {
	Time        string `json:"time"`
	Occupied    bool   `json:"occupied"`
	Maintenance bool   `json:"maintenance"`
}

type Reservation struct {
	ID            string  `json:"id"`
	SportID       string  `json:"sportId"`
	SportName     string  `json:"sportName"`
	CourtNumber   int     `json:"courtNumber"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Duration      int     `json:"duration"`
	Price         float64 `json:"price"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentAmount float64 `json:"paymentAmount"`
	PaymentPct    int     `json:"paymentPercentage"`
}

type Payment struct {
	ID            string  `json:"id"`
	ReservationID string  `json:"reservationId"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	Receipt       string  `json:"receipt"`
}

func (c *Client) Login(ctx context.Context, email, password, name string) (Session, error) {
	body := map[string]string{"email": email, "password": password, "name": name}

	var session Session
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", nil, body, &session); err != nil {
		return Session{}, err
	}

	return session, nil
}

func (c *Client) GetSports(ctx context.Context) ([]Sport, error) {
	var sports []Sport
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/sports", nil, nil, &sports); err != nil {
		return nil, err
	}

	return sports, nil
}

func (c *Client) GetAvailability(ctx context.Context, sportID, date string, court int) ([]Slot, error) {
	q := url.Values{}
	q.Set("date", date)
	q.Set("court", strconv.Itoa(court))

	path := "/api/v1/sports/" + url.PathEscape(sportID) + "/availability"

	var slots []Slot
	if err := c.doJSON(ctx, http.MethodGet, path, q, nil, &slots); err != nil {
		return nil, err
	}

	return slots, nil
}

func (c *Client) CreateReservation(ctx context.Context, sportID string, court int, date, timeOfDay string) (Reservation, error) {
	body := map[string]any{
		"sportId":     sportID,
		"courtNumber": court,
		"date":        date,
		"time":        timeOfDay,
	}

	var reservation Reservation
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/reservations", nil, body, &reservation); err != nil {
		return Reservation{}, err
	}

	return reservation, nil
}

func (c *Client) GetMyReservations(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/reservations/mine", nil, nil, &reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

func (c *Client) CancelReservation(ctx context.Context, id string) error {
	path := "/api/v1/reservations/" + url.PathEscape(id) + "/cancel"
	return c.doJSON(ctx, http.MethodPut, path, nil, nil, nil)
}

func (c *Client) SubmitPayment(ctx context.Context, reservationID, payType string) (Payment, error) {
	body := map[string]string{"reservationId": reservationID, "type": payType}

	var payment Payment
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/payments", nil, body, &payment); err != nil {
		return Payment{}, err
	}

	return payment, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	endpoint := strings.TrimSuffix(c.BaseURL, "/") + path

	if query != nil {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	if len(c.AccessToken) > 0 {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed: %s: %s", resp.Status, apiError(resp.Body))
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}

	return nil
}

func apiError(body io.Reader) string {
	raw, _ := io.ReadAll(body)

	var wrapped struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Error) > 0 {
		return wrapped.Error
	}

	return strings.TrimSpace(string(raw))
}
