package compliance

import (
	"context"
	"github.com/kanzihuang/conda-guard/pkg/conda"
)

// Check is a single named compliance check.
type Check interface {
	Name() string
	Run(ctx context.Context) (conda.Result, error)
}

type checkFunc struct {
	name string
	run  func(ctx context.Context) (conda.Result, error)
}

func (f checkFunc) Name() string {
	return f.name
}

func (f checkFunc) Run(ctx context.Context) (conda.Result, error) {
	return f.run(ctx)
}

// Checks returns the checks in the order they run.
func (c *Checker) Checks() []Check {
	return []Check{
		checkFunc{name: "packages", run: c.Packages},
		checkFunc{name: "channels", run: c.Channels},
	}
}

// Run runs every check sequentially. It stops at the first check that returns
// an error and returns the results gathered so far.
func (c *Checker) Run(ctx context.Context) ([]conda.Result, error) {
	checks := c.Checks()
	results := make([]conda.Result, 0, len(checks))
	for _, check := range checks {
		result, err := check.Run(ctx)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
