package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListForRecipient(ctx context.Context, recipientID uint, role string, unreadOnly bool, limit int) ([]Notification, error)
	// MarkRead only touches notifications owned by the recipient.
	MarkRead(ctx context.Context, id, recipientID uint, role string) (bool, error)
}
