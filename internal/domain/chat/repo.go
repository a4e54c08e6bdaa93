package chat

import "context"

type Repository interface {
	Create(ctx context.Context, m *Message) error
	// ListBySession returns the session's messages, oldest first.
	ListBySession(ctx context.Context, sessionID string) ([]Message, error)
}
