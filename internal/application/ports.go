package application

import (
	"context"
	"io"

	"github.com/linskybing/freelance-market/internal/domain/notification"
	"github.com/linskybing/freelance-market/internal/mailer"
)

// ListingCache stores serialized public listing pages.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Invalidate(ctx context.Context) error
}

type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

type AvatarStore interface {
	PutAvatar(ctx context.Context, role string, userID uint, r io.Reader, size int64, contentType string) (string, error)
}

// Publisher pushes a stored notification to connected clients.
type Publisher interface {
	Publish(n *notification.Notification)
}
