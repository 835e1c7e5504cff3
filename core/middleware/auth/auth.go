package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Config holds the credentials expected by the basic auth guard.
type Config struct {
	// Username is the expected basic auth user.
	Username string
	// Password is the expected basic auth password.
	Password string
}

// New returns a middleware enforcing HTTP basic auth on the routes it is
// mounted on. If no credentials are configured the guard is disabled and
// all requests pass through.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Username == "" && cfg.Password == "" {
			return c.Next()
		}

		user, pass, ok := parseBasicAuth(c.Get(fiber.HeaderAuthorization))
		if !ok || !equal(user, cfg.Username) || !equal(pass, cfg.Password) {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		return c.Next()
	}
}

// parseBasicAuth decodes an Authorization header of the form
// "Basic base64(user:pass)".
func parseBasicAuth(header string) (user, pass string, ok bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}

	user, pass, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}

	return user, pass, true
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
