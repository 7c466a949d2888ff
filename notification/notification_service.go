package notification

import (
	"context"
	"log/slog"
)

type NotificationRepository interface {
	InsertNotification(ctx context.Context, notification Notification) (Notification, error)
	GetNotificationsPerUser(ctx context.Context, userID string) ([]Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID string) error
}

type Service struct {
	repo   NotificationRepository
	logger *slog.Logger
}

func NewService(repo NotificationRepository) *Service {
	return &Service{
		repo:   repo,
		logger: slog.Default().With("component", "notification"),
	}
}

// Notify writes one entry to the user's feed. Failures are logged and
// returned but callers typically treat them as non-fatal.
func (s *Service) Notify(ctx context.Context, userID, kind, title, message string) error {
	_, err := s.repo.InsertNotification(ctx, Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
	})

	if err != nil {
		s.logger.Error("failed to store notification", "userId", userID, "err", err)
	}

	return err
}

func (s *Service) FindNotificationsPerUser(ctx context.Context, userID string) ([]Notification, error) {
	return s.repo.GetNotificationsPerUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkNotificationRead(ctx, id, userID)
}
