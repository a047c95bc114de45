package worker

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestHostTaskQueue(t *testing.T) {
	first := HostTaskQueue("conda-guard")
	second := HostTaskQueue("conda-guard")
	require.NotEqual(t, first, second)

	require.True(t, strings.HasPrefix(first, "conda-guard-"))
	id, err := uuid.Parse(strings.TrimPrefix(first, "conda-guard-"))
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), id.Version())
}
