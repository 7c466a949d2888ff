package sport

import (
	"context"
	"fmt"
	"time"
)

type SportRepository interface {
	GetSports(ctx context.Context) ([]Sport, error)
	GetSportByID(ctx context.Context, id string) (Sport, error)
	UpdateSport(ctx context.Context, sport Sport) error
}

// Patch carries the admin-editable fields. Nil means "leave unchanged".
type Patch struct {
	Name     *string   `json:"name"`
	Courts   *int      `json:"courts"`
	Price    *float64  `json:"price"`
	Duration *int      `json:"duration"`
	Enabled  *bool     `json:"enabled"`
	Schedule *Schedule `json:"schedule"`
}

type Service struct {
	repo SportRepository
}

func NewService(repo SportRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListSports(ctx context.Context, includeDisabled bool) ([]Sport, error) {
	sports, err := s.repo.GetSports(ctx)

	if err != nil {
		return nil, err
	}

	if includeDisabled {
		return sports, nil
	}

	enabled := []Sport{}

	for _, sport := range sports {
		if sport.Enabled {
			enabled = append(enabled, sport)
		}
	}

	return enabled, nil
}

func (s *Service) FindSportByID(ctx context.Context, id string) (Sport, error) {
	return s.repo.GetSportByID(ctx, id)
}

func (s *Service) UpdateSport(ctx context.Context, id string, patch Patch) (Sport, error) {
	sport, err := s.repo.GetSportByID(ctx, id)

	if err != nil {
		return Sport{}, err
	}

	if patch.Name != nil {
		sport.Name = *patch.Name
	}
	if patch.Courts != nil {
		sport.Courts = *patch.Courts
	}
	if patch.Price != nil {
		sport.Price = *patch.Price
	}
	if patch.Duration != nil {
		sport.Duration = *patch.Duration
	}
	if patch.Enabled != nil {
		sport.Enabled = *patch.Enabled
	}
	if patch.Schedule != nil {
		sport.Schedule = *patch.Schedule
	}

	if err := validateSport(sport); err != nil {
		return Sport{}, err
	}

	err = s.repo.UpdateSport(ctx, sport)

	if err != nil {
		return Sport{}, err
	}

	return sport, nil
}

func validateSport(sport Sport) error {
	if len(sport.Name) == 0 {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}

	if sport.Courts < 1 {
		return fmt.Errorf("%w: courts must be at least 1", ErrValidation)
	}

	if sport.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	if sport.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrValidation)
	}

	start, err := time.Parse("15:04", sport.Schedule.Start)

	if err != nil {
		return fmt.Errorf("%w: invalid schedule start '%v'", ErrValidation, sport.Schedule.Start)
	}

	end, err := time.Parse("15:04", sport.Schedule.End)

	if err != nil {
		return fmt.Errorf("%w: invalid schedule end '%v'", ErrValidation, sport.Schedule.End)
	}

	// end == 00:00 is the one allowed overnight wrap, meaning midnight.
	if sport.Schedule.End != "00:00" && !start.Before(end) {
		return fmt.Errorf("%w: schedule start must be before end", ErrValidation)
	}

	return nil
}
