package compliance

import (
	"bytes"
	"github.com/kanzihuang/conda-guard/pkg/conda"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestWriteReport(t *testing.T) {
	results := []conda.Result{
		{
			Check:     "packages",
			Status:    conda.StatusFailed,
			Command:   "conda list --explicit",
			Message:   "Found 1 packages from repo.anaconda.com (defaults channel):\nhttps://repo.anaconda.com/pkgs/main/foo-1.0",
			Offending: []string{"https://repo.anaconda.com/pkgs/main/foo-1.0"},
			Total:     1,
		},
		{
			Check:    "channels",
			Status:   conda.StatusPassed,
			Command:  "conda config --get channels",
			Channels: []string{"conda-forge"},
		},
		{
			Check:   "extra",
			Status:  conda.StatusSkipped,
			Command: "conda info",
			Message: "conda not available (exit code 127)",
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, results))
	require.Equal(t, "FAIL\tpackages\tconda list --explicit\n"+
		"\tFound 1 packages from repo.anaconda.com (defaults channel):\n"+
		"\thttps://repo.anaconda.com/pkgs/main/foo-1.0\n"+
		"PASS\tchannels\tconda config --get channels\n"+
		"\tchannels: conda-forge\n"+
		"SKIP\textra\tconda info\n"+
		"\tconda not available (exit code 127)\n", buf.String())
}
