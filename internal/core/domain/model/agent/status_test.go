package agent_test

import (
	"testing"

	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, agent.Active.Validate())
	require.NoError(t, agent.Inactive.Validate())

	require.ErrorIs(t, agent.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.Error(t, agent.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "active", agent.Active.String())
	assert.Equal(t, "inactive", agent.Inactive.String())
	assert.Equal(t, "unknown", agent.Unknown.String())
	assert.Equal(t, "unknown", agent.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("round-trips valid statuses", func(t *testing.T) {
		for _, status := range []agent.Status{agent.Active, agent.Inactive} {
			parsed, err := agent.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects arbitrary strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "ACTIVE", "retired"} {
			_, err := agent.ParseStatus(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}
