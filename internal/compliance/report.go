package compliance

import (
	"fmt"
	"github.com/kanzihuang/conda-guard/pkg/conda"
	"io"
	"strings"
)

var statusLabels = map[conda.Status]string{
	conda.StatusPassed:  "PASS",
	conda.StatusFailed:  "FAIL",
	conda.StatusSkipped: "SKIP",
}

// WriteReport writes one line per result, followed by its indented message.
func WriteReport(w io.Writer, results []conda.Result) error {
	for _, r := range results {
		label, ok := statusLabels[r.Status]
		if !ok {
			label = strings.ToUpper(string(r.Status))
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", label, r.Check, r.Command); err != nil {
			return err
		}
		if len(r.Channels) > 0 {
			if _, err := fmt.Fprintf(w, "\tchannels: %s\n", strings.Join(r.Channels, ", ")); err != nil {
				return err
			}
		}
		if r.Message == "" {
			continue
		}
		for _, line := range strings.Split(r.Message, "\n") {
			if _, err := fmt.Fprintf(w, "\t%s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}
