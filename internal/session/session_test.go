package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_AuthenticateThenUnlock(t *testing.T) {
	s := New()
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsUnlocked())

	s.Authenticate("sometoken", 42, "alice")
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsUnlocked())
	assert.Equal(t, int64(42), s.UserID())
	assert.Equal(t, "alice", s.Username())

	s.Unlock("public-pem", "private-pem")
	assert.True(t, s.IsUnlocked())
	assert.Equal(t, "public-pem", s.PublicKey())
	assert.Equal(t, "private-pem", s.PrivateKey())
}

func TestSession_LockKeepsToken(t *testing.T) {
	s := New()
	s.Authenticate("sometoken", 42, "alice")
	s.Unlock("public-pem", "private-pem")

	s.Lock()

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsUnlocked())
	assert.Empty(t, s.PrivateKey())
	assert.Empty(t, s.PublicKey())
	assert.Equal(t, "sometoken", s.Token())
}

func TestSession_AuthenticateDropsOldKeys(t *testing.T) {
	s := New()
	s.Authenticate("token-a", 1, "alice")
	s.Unlock("public-a", "private-a")

	s.Authenticate("token-b", 2, "bob")

	assert.False(t, s.IsUnlocked())
	assert.Equal(t, int64(2), s.UserID())
}

func TestSession_Clear(t *testing.T) {
	s := New()
	s.Authenticate("sometoken", 42, "alice")
	s.Unlock("public-pem", "private-pem")

	s.Clear()

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsUnlocked())
	assert.Zero(t, s.UserID())
	assert.Empty(t, s.Username())
}
