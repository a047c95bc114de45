package worker

import (
	"github.com/google/uuid"
	"github.com/kanzihuang/conda-guard/internal/compliance"
	"github.com/kanzihuang/conda-guard/pkg/conda"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"log/slog"
)

type Options struct {
	Address   string
	Namespace string
	TaskQueue string
}

func Dial(options Options) (client.Client, error) {
	return client.Dial(client.Options{
		HostPort:  options.Address,
		Namespace: options.Namespace,
		Logger:    log.NewStructuredLogger(slog.Default()),
	})
}

// HostTaskQueue returns a task queue name unique to this worker process.
func HostTaskQueue(taskQueue string) string {
	return taskQueue + "-" + uuid.Must(uuid.NewV7()).String()
}

type routeRegistry interface {
	RegisterWorkflowWithOptions(w interface{}, options workflow.RegisterOptions)
	RegisterActivityWithOptions(a interface{}, options activity.RegisterOptions)
}

type hostRegistry interface {
	RegisterActivity(a interface{})
}

// Register registers the Audit workflow and host lookup on the shared task
// queue, and the checks on the host task queue.
func Register(routeWorker routeRegistry, hostWorker hostRegistry, activities *Activities) {
	hostWorker.RegisterActivity(activities)

	routeWorker.RegisterWorkflowWithOptions(Audit, workflow.RegisterOptions{Name: conda.Audit})
	// Both workers may share one registry, which already holds GetHostTaskQueue.
	routeWorker.RegisterActivityWithOptions(activities.GetHostTaskQueue, activity.RegisterOptions{
		Name:                          conda.GetHostTaskQueue,
		DisableAlreadyRegisteredCheck: true,
	})
}

func Run(options Options, checker *compliance.Checker) error {
	c, err := Dial(options)
	if err != nil {
		return err
	}
	defer c.Close()

	hostTaskQueue := HostTaskQueue(options.TaskQueue)
	activities := NewActivities(hostTaskQueue, checker)

	hostWorker := worker.New(c, hostTaskQueue, worker.Options{DisableWorkflowWorker: true})
	routeWorker := worker.New(c, options.TaskQueue, worker.Options{})
	Register(routeWorker, hostWorker, activities)

	if err := hostWorker.Start(); err != nil {
		return err
	}
	defer hostWorker.Stop()
	if err := routeWorker.Start(); err != nil {
		return err
	}
	defer routeWorker.Stop()

	slog.Info("worker started", "taskQueue", options.TaskQueue, "hostTaskQueue", hostTaskQueue)
	<-worker.InterruptCh()
	return nil
}
