package credentials

import (
	"context"

	"golang.org/x/oauth2"
)

// FromTokenSource adapts an oauth2.TokenSource. Tokens are cached with
// oauth2.ReuseTokenSource so the source is only consulted on expiry.
func FromTokenSource(ts oauth2.TokenSource) Credential {
	return tokenSourceCredential{ts: oauth2.ReuseTokenSource(nil, ts)}
}

type tokenSourceCredential struct {
	ts oauth2.TokenSource
}

func (c tokenSourceCredential) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tok, err := c.ts.Token()
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// TokenSource exposes any Credential as an oauth2.TokenSource, for handing
// the same identity to other Google API clients. Tokens from credentials
// other than ServiceAccount carry no expiry.
func TokenSource(ctx context.Context, cred Credential) oauth2.TokenSource {
	switch c := cred.(type) {
	case *ServiceAccount:
		return c.TokenSource(ctx)
	case tokenSourceCredential:
		return c.ts
	}
	return credentialTokenSource{ctx: ctx, cred: cred}
}

type credentialTokenSource struct {
	ctx  context.Context
	cred Credential
}

func (ts credentialTokenSource) Token() (*oauth2.Token, error) {
	tok, err := ts.cred.Token(ts.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}
