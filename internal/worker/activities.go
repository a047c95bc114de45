package worker

import (
	"context"
	"errors"
	"github.com/kanzihuang/conda-guard/internal/compliance"
	"github.com/kanzihuang/conda-guard/pkg/conda"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
)

type Activities struct {
	hostTaskQueue string
	checker       *compliance.Checker
}

func NewActivities(hostTaskQueue string, checker *compliance.Checker) *Activities {
	return &Activities{
		hostTaskQueue: hostTaskQueue,
		checker:       checker,
	}
}

// GetHostTaskQueue returns the task queue served only by this host, so the
// checks of one audit all run on the same machine.
func (a *Activities) GetHostTaskQueue(_ context.Context, _ conda.GetHostTaskQueueInput) (conda.GetHostTaskQueueOutput, error) {
	return conda.GetHostTaskQueueOutput{HostTaskQueue: a.hostTaskQueue}, nil
}

func (a *Activities) CheckPackages(ctx context.Context, _ conda.CheckInput) (conda.Result, error) {
	return a.check(ctx, a.checker.Packages)
}

func (a *Activities) CheckChannels(ctx context.Context, _ conda.CheckInput) (conda.Result, error) {
	return a.check(ctx, a.checker.Channels)
}

func (a *Activities) check(ctx context.Context, run func(context.Context) (conda.Result, error)) (conda.Result, error) {
	logger := activity.GetLogger(ctx)
	result, err := run(ctx)
	if errors.Is(err, conda.ErrBlobTooLarge) {
		return conda.Result{}, temporal.NewNonRetryableApplicationError(err.Error(), "BlobTooLarge", err)
	}
	if err != nil {
		return conda.Result{}, err
	}
	logger.Info("check finished", "check", result.Check, "status", result.Status, "hostTaskQueue", a.hostTaskQueue)
	return result, nil
}
