package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"Employee-Attendance-Portal/pkg/session"
)

const SessionCookie = "portal_session"

// TokenFromRequest reads the session token from the Authorization header,
// falling back to the session cookie.
func TokenFromRequest(c *fiber.Ctx) string {
	if authHeader := c.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies(SessionCookie)
}

// SessionLoader attaches the live session, if any, to c.Locals("session").
// Requests without a usable token pass through anonymous.
func SessionLoader(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := TokenFromRequest(c); token != "" {
			if s, err := sessions.Lookup(token); err == nil {
				c.Locals("session", s)
			}
		}
		return c.Next()
	}
}

// CurrentSession returns the session attached by SessionLoader.
func CurrentSession(c *fiber.Ctx) (session.Session, bool) {
	s, ok := c.Locals("session").(session.Session)
	return s, ok
}

// SetSessionCookie hands the token to browser clients as well.
func SetSessionCookie(c *fiber.Ctx, token string, s session.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  s.ExpiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok := CurrentSession(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization header or session cookie is required"})
		}
		if !s.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Please log in first"})
		}
		return c.Next()
	}
}
