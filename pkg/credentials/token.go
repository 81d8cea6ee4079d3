package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// tokenResponse is the OAuth2 token endpoint response per RFC 6749.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// TokenError is an OAuth2 error returned by the token endpoint while
// exchanging a service account assertion.
type TokenError struct {
	// StatusCode is the HTTP status code of the token response
	StatusCode int `json:"-"`

	// Code is the OAuth2 error code (e.g. "invalid_grant")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// exchangeAssertion trades a signed assertion for an access token.
func exchangeAssertion(
	ctx context.Context,
	doer HTTPDoer,
	tokenURL, assertion string,
	now time.Time,
) (*oauth2.Token, error) {
	data := url.Values{
		"grant_type": {jwtBearerGrantType},
		"assertion":  {assertion},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		tokErr := &TokenError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, tokErr); err != nil || tokErr.Code == "" {
			tokErr.Code = "server_error"
			tokErr.Description = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return nil, tokErr
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, errors.New("token response has no access_token")
	}

	tokenType := tr.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return &oauth2.Token{
		AccessToken: tr.AccessToken,
		TokenType:   tokenType,
		Expiry:      now.Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}
