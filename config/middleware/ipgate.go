package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/accessgate"
	"Employee-Attendance-Portal/pkg/metrics"
	"Employee-Attendance-Portal/pkg/session"
)

const OverridePath = "/api/v1/gate/override"

// ClientIP resolves the caller's address from proxy headers or the connection.
func ClientIP(c *fiber.Ctx) string {
	header := func(key string) string { return c.Get(key) }
	return accessgate.ClientIP(header, c.Context().RemoteAddr().String(), accessgate.HostIP)
}

// IPGate must run after SessionLoader. A denied request is answered with 403
// and the session, including any override, is left as it is.
func IPGate(gate *accessgate.Gate, sessions *session.Manager, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := ClientIP(c)
		s, hasSession := CurrentSession(c)

		decision := gate.Decide(ip, hasSession && s.AdminOverride)
		if !decision.Allowed && gate.TakeForcedOverride() {
			granted, err := forceOverride(c, sessions, s, hasSession)
			if err != nil {
				log.Printf("ipgate: failed to apply forced override: %v", err)
			} else {
				c.Locals("session", granted)
				decision = models.GateDecision{Allowed: true, ClientIP: ip, Reason: accessgate.ReasonOverride}
			}
		}
		m.GateDecision(decision.Allowed, decision.Reason)

		if !decision.Allowed {
			log.Printf("ipgate: denied %s %s from %s", c.Method(), c.Path(), ip)
			return c.Status(fiber.StatusForbidden).JSON(models.GateDeniedResponse{
				Error:    "Access denied from this network",
				ClientIP: ip,
				Override: OverridePath,
			})
		}
		c.Locals("gate", decision)
		return c.Next()
	}
}

func forceOverride(c *fiber.Ctx, sessions *session.Manager, s session.Session, hasSession bool) (session.Session, error) {
	if hasSession {
		if err := sessions.GrantOverride(s.ID); err != nil {
			return session.Session{}, err
		}
		s.AdminOverride = true
		return s, nil
	}
	created, token, err := sessions.Create()
	if err != nil {
		return session.Session{}, err
	}
	if err := sessions.GrantOverride(created.ID); err != nil {
		return session.Session{}, err
	}
	created.AdminOverride = true
	SetSessionCookie(c, token, created)
	c.Set("X-Session-Token", token)
	return created, nil
}
