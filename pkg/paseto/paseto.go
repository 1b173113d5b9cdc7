package paseto

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"

	util "Employee-Attendance-Portal/pkg/utils"
)

const footer = "attendance-portal"

var ErrMissingSessionID = errors.New("token carries no session id")

// Maker issues PASETO v2 local tokens that carry only a session id; the
// session itself lives server side.
type Maker struct {
	v2  *paseto.V2
	key []byte
}

func NewMaker(secret string) (*Maker, error) {
	key, err := util.DecodeKey(secret)
	if err != nil {
		return nil, fmt.Errorf("PASETO_SECRET: %w", err)
	}
	return &Maker{v2: paseto.NewV2(), key: key}, nil
}

func (m *Maker) CreateToken(sessionID string, now time.Time, ttl time.Duration) (string, error) {
	token := paseto.JSONToken{
		Jti:        sessionID,
		IssuedAt:   now,
		NotBefore:  now,
		Expiration: now.Add(ttl),
	}
	token.Set("sid", sessionID)

	return m.v2.Encrypt(m.key, token, footer)
}

// VerifyToken returns the session id carried by a valid, unexpired token.
func (m *Maker) VerifyToken(tokenString string) (string, error) {
	var token paseto.JSONToken
	var f string

	if err := m.v2.Decrypt(tokenString, m.key, &token, &f); err != nil {
		return "", fmt.Errorf("failed to decrypt paseto token: %w", err)
	}
	if f != footer {
		return "", errors.New("unexpected token footer")
	}
	if err := token.Validate(); err != nil {
		return "", fmt.Errorf("token validation failed: %w", err)
	}

	sid := token.Get("sid")
	if sid == "" {
		return "", ErrMissingSessionID
	}
	return sid, nil
}
