package credentials

import (
	"context"
	"errors"
)

// ErrEmptyToken is returned by a Static credential holding no token.
var ErrEmptyToken = errors.New("credentials: empty static token")

// Static is a fixed bearer token. It never refreshes.
type Static string

// Token returns the token itself.
func (s Static) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == "" {
		return "", ErrEmptyToken
	}
	return string(s), nil
}
