package agent_test

import (
	"strings"
	"testing"

	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces salt-digest pair verifiable with the raw password", func(t *testing.T) {
		hash, err := agent.HashPassword("password123")
		require.NoError(t, err)

		parts := strings.Split(hash, "$")
		require.Len(t, parts, 2)
		assert.Len(t, parts[0], 32) // 16 random bytes, hex encoded
		assert.Len(t, parts[1], 64) // sha256, hex encoded

		assert.True(t, agent.VerifyPassword("password123", hash))
		assert.False(t, agent.VerifyPassword("wrong", hash))
	})

	t.Run("salts are random so equal passwords hash differently", func(t *testing.T) {
		first, err := agent.HashPassword("password123")
		require.NoError(t, err)
		second, err := agent.HashPassword("password123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := agent.HashPassword("abc12")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Run("malformed stored credentials never verify", func(t *testing.T) {
		for _, stored := range []string{
			"",
			"nodollarsign",
			"a$b$c",
			"plaintextpassword",
		} {
			assert.False(t, agent.VerifyPassword("password123", stored),
				"stored credential %q must not verify", stored)
		}
	})

	t.Run("empty raw password does not match a real credential", func(t *testing.T) {
		hash, err := agent.HashPassword("password123")
		require.NoError(t, err)

		assert.False(t, agent.VerifyPassword("", hash))
	})
}
