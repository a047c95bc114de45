package compliance

import (
	"context"
	"github.com/kanzihuang/conda-guard/internal/shell"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestChecksFailOnTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conda")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexec sleep 10\n"), 0755))
	checker := NewChecker(shell.NewExec(), Options{Executable: path})

	for _, check := range checker.Checks() {
		t.Run(check.Name(), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
			defer cancel()
			result, err := check.Run(ctx)
			require.ErrorIs(t, err, context.DeadlineExceeded)
			require.Empty(t, result.Status)
		})
	}
}
