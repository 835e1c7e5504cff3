package displayapi

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenLeeway is the minimum remaining validity a cached token must have to
// be reused. Tokens closer to expiry than this are refreshed.
const tokenLeeway = 60 * time.Second

// tokenCache memoizes the single admin token. Capacity is one; a refresh
// simply overwrites the previous token.
type tokenCache struct {
	mu     sync.Mutex
	token  string
	expiry time.Time
}

// token returns a valid admin token, requesting a fresh one from the
// authentication endpoint when the cached token is missing or about to
// expire.
func (c *client) token(ctx context.Context) (string, error) {
	c.tokens.mu.Lock()
	defer c.tokens.mu.Unlock()

	if c.tokens.token != "" && time.Until(c.tokens.expiry) > tokenLeeway {
		return c.tokens.token, nil
	}

	body := map[string]string{
		"email":    c.cfg.Email,
		"password": c.cfg.Password,
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.send(ctx, http.MethodPost, "/v1/authenticate", nil, body, &resp, false); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("authentication returned an empty token")
	}

	c.tokens.token = resp.Token
	c.tokens.expiry = tokenExpiry(resp.Token)
	return c.tokens.token, nil
}

// tokenExpiry extracts the exp claim from the token without verifying the
// signature; the server signed it, the client only needs the deadline.
// A token that cannot be decoded gets a zero expiry, forcing a refresh on
// the next call.
func tokenExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
