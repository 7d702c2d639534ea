package application

import (
	"context"
	"log/slog"

	"github.com/linskybing/freelance-market/internal/domain/notification"
	"github.com/linskybing/freelance-market/internal/repository"
)

const notificationListLimit = 50

type NotificationService struct {
	Repos     *repository.Repos
	publisher Publisher
}

func NewNotificationService(repos *repository.Repos, publisher Publisher) *NotificationService {
	return &NotificationService{
		Repos:     repos,
		publisher: publisher,
	}
}

// Notify stores n and pushes it to the recipient's open sockets.
func (s *NotificationService) Notify(ctx context.Context, n *notification.Notification) error {
	if err := s.Repos.Notification.Create(ctx, n); err != nil {
		return err
	}
	s.publisher.Publish(n)
	return nil
}

// NotifyQuietly is Notify for side effects that must not fail the caller.
func (s *NotificationService) NotifyQuietly(ctx context.Context, n *notification.Notification) {
	if err := s.Notify(ctx, n); err != nil {
		slog.Warn("notification not delivered",
			"type", n.Type,
			"recipientId", n.RecipientID,
			"recipientRole", n.RecipientRole,
			"error", err,
		)
	}
}

func (s *NotificationService) List(ctx context.Context, userID uint, role string, unreadOnly bool) ([]notification.Notification, error) {
	return s.Repos.Notification.ListForRecipient(ctx, userID, role, unreadOnly, notificationListLimit)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uint, role string) error {
	ok, err := s.Repos.Notification.MarkRead(ctx, id, userID, role)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(*notification.Notification) {}
