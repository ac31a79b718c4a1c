package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	t.Run("initial state is logged out", func(t *testing.T) {
		assert.False(t, NewGate().LoggedIn())
	})

	t.Run("correct pair logs in", func(t *testing.T) {
		g := NewGate()
		require.NoError(t, g.Login("admin", "password"))
		assert.True(t, g.LoggedIn())
	})

	t.Run("wrong pair leaves gate untouched", func(t *testing.T) {
		g := NewGate()
		for _, pair := range [][2]string{
			{"admin", "wrong"},
			{"root", "password"},
			{"", ""},
			{"ADMIN", "password"},
		} {
			err := g.Login(pair[0], pair[1])
			assert.ErrorIs(t, err, ErrBadCredentials, "pair %v", pair)
			assert.False(t, g.LoggedIn(), "pair %v", pair)
		}
	})

	t.Run("login then logout round-trips to initial state", func(t *testing.T) {
		g := NewGate()
		require.NoError(t, g.Login("admin", "password"))
		g.Logout()
		assert.Equal(t, NewGate(), g)
	})

	t.Run("logout when already logged out is harmless", func(t *testing.T) {
		g := NewGate()
		g.Logout()
		assert.False(t, g.LoggedIn())
	})
}
