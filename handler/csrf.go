package handler

import "context"

// CsrfStore is the slice of the CSRF manager the handlers need: minting a
// token at login, reading it for page renders, dropping it at logout.
type CsrfStore interface {
	Issue(ctx context.Context, sessionID string) (string, error)
	Token(ctx context.Context, sessionID string) (string, error)
	Revoke(ctx context.Context, sessionID string) error
}
