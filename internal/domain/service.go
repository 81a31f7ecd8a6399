package domain

import "context"

// ActivationTokenStore holds one-time activation tokens keyed by user ID.
// Tokens expire on their own; Consume removes the token so a link can only
// be used once.
type ActivationTokenStore interface {
	Put(ctx context.Context, userID string, token string) error
	// Consume validates the token for the user and deletes it on match.
	// Returns false when the token is unknown, expired, or does not match.
	Consume(ctx context.Context, userID string, token string) (bool, error)
}

// Mailer dispatches transactional mail. The auth service only needs plain
// text delivery.
type Mailer interface {
	Send(to string, subject string, body string) error
}
