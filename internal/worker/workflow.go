package worker

import (
	"github.com/kanzihuang/conda-guard/pkg/conda"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"time"
)

const (
	checkTimeout = 5 * time.Minute
	// hostScheduleToStartTimeout bounds the wait for the host worker, which
	// may have exited after answering GetHostTaskQueue.
	hostScheduleToStartTimeout = time.Minute
)

// Audit picks a host through the shared task queue and runs every check on
// that host, one after the other.
func Audit(ctx workflow.Context, _ conda.AuditInput) (conda.AuditOutput, error) {
	logger := workflow.GetLogger(ctx)
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: checkTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	})

	var host conda.GetHostTaskQueueOutput
	if err := workflow.ExecuteActivity(ctx, conda.GetHostTaskQueue, conda.GetHostTaskQueueInput{}).Get(ctx, &host); err != nil {
		return conda.AuditOutput{}, err
	}
	hostCtx := withHostTaskQueue(ctx, host.HostTaskQueue)

	output := conda.AuditOutput{HostTaskQueue: host.HostTaskQueue}
	for _, name := range []string{conda.CheckPackages, conda.CheckChannels} {
		var result conda.Result
		if err := workflow.ExecuteActivity(hostCtx, name, conda.CheckInput{}).Get(hostCtx, &result); err != nil {
			return output, err
		}
		logger.Info("check finished", "check", result.Check, "status", result.Status)
		output.Results = append(output.Results, result)
	}
	return output, nil
}

func withHostTaskQueue(ctx workflow.Context, hostTaskQueue string) workflow.Context {
	ctx = workflow.WithTaskQueue(ctx, hostTaskQueue)
	return workflow.WithScheduleToStartTimeout(ctx, hostScheduleToStartTimeout)
}
