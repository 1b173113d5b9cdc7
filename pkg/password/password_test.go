package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hashed, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.True(t, IsHashed(hashed))
	assert.NotEqual(t, "s3cret!", hashed)

	ok, upgrade := CheckPassword(hashed, "s3cret!")
	assert.True(t, ok)
	assert.False(t, upgrade)

	ok, _ = CheckPassword(hashed, "wrong")
	assert.False(t, ok)
}

func TestCheckLegacyPlainText(t *testing.T) {
	ok, upgrade := CheckPassword("welcome1", "welcome1")
	assert.True(t, ok)
	assert.True(t, upgrade)

	ok, upgrade = CheckPassword("welcome1", "welcome2")
	assert.False(t, ok)
	assert.False(t, upgrade)

	ok, _ = CheckPassword("", "")
	assert.False(t, ok)
}
