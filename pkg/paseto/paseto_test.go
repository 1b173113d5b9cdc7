package paseto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "Employee-Attendance-Portal/pkg/utils"
)

func newMaker(t *testing.T) *Maker {
	t.Helper()
	secret, err := util.GenerateBase64Key(32)
	require.NoError(t, err)
	m, err := NewMaker(secret)
	require.NoError(t, err)
	return m
}

func TestTokenRoundTrip(t *testing.T) {
	m := newMaker(t)

	token, err := m.CreateToken("sess-1", time.Now(), time.Hour)
	require.NoError(t, err)
	assert.Contains(t, token, "v2.local.")

	sid, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sid)
}

func TestExpiredToken(t *testing.T) {
	m := newMaker(t)
	token, err := m.CreateToken("sess-1", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = m.VerifyToken(token)
	assert.Error(t, err)
}

func TestTokenFromOtherKey(t *testing.T) {
	token, err := newMaker(t).CreateToken("sess-1", time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = newMaker(t).VerifyToken(token)
	assert.Error(t, err)
}

func TestNewMakerRejectsShortSecret(t *testing.T) {
	_, err := NewMaker("c2hvcnQ=")
	assert.Error(t, err)
}
