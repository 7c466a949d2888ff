package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (User, error)
	InsertUser(ctx context.Context, user User) (User, error)
	UpdateUser(ctx context.Context, user User) error
}

// ProfilePatch carries the self-editable profile fields.
type ProfilePatch struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// Service issues and resolves sessions. Credentials are not verified
// against a password store; any non-empty password is accepted and the
// role is derived from the configured admin email list. The role check
// itself is enforced here, server-side, not inferred from client data.
type Service struct {
	repo        UserRepository
	adminEmails []string
	sessions    *cache.Cache
}

func NewService(repo UserRepository, adminEmails []string) *Service {
	return &Service{
		repo:        repo,
		adminEmails: adminEmails,
		sessions:    cache.New(12*time.Hour, 30*time.Minute),
	}
}

func (s *Service) Login(ctx context.Context, email, password, name string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if len(email) == 0 || len(password) == 0 {
		return Session{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.repo.GetUserByEmail(ctx, email)

	if errors.Is(err, ErrUserNotFound) {
		user, err = s.repo.InsertUser(ctx, User{
			Name:  displayName(name, email),
			Email: email,
			Role:  s.roleFor(email),
		})
	}

	if err != nil {
		return Session{}, err
	}

	token := uuid.NewString()
	s.sessions.Set(token, user, cache.DefaultExpiration)

	return Session{Token: token, User: user}, nil
}

func (s *Service) GetSession(token string) (User, error) {
	cached, found := s.sessions.Get(token)

	if !found {
		return User{}, ErrInvalidSession
	}

	return cached.(User), nil
}

func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
}

func (s *Service) UpdateProfile(ctx context.Context, token string, user User, patch ProfilePatch) (User, error) {
	if patch.Name != nil {
		user.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Phone != nil {
		user.Phone = strings.TrimSpace(*patch.Phone)
	}

	if len(user.Name) == 0 {
		return User{}, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}

	err := s.repo.UpdateUser(ctx, user)

	if err != nil {
		return User{}, err
	}

	// Keep the cached session in step with the stored profile.
	s.sessions.Set(token, user, cache.DefaultExpiration)

	return user, nil
}

func (s *Service) roleFor(email string) string {
	if slices.Contains(s.adminEmails, email) {
		return RoleAdmin
	}

	return RoleClient
}

func displayName(name, email string) string {
	name = strings.TrimSpace(name)

	if len(name) != 0 {
		return name
	}

	local, _, _ := strings.Cut(email, "@")

	return local
}
