package cmd

import (
	"context"
	"github.com/google/uuid"
	"github.com/kanzihuang/conda-guard/internal/compliance"
	"github.com/kanzihuang/conda-guard/internal/worker"
	"github.com/kanzihuang/conda-guard/pkg/conda"
	"github.com/spf13/cobra"
	"go.temporal.io/sdk/client"
	"io"
	"log/slog"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "run the conda channel checks on a worker host through Temporal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		options := temporalOptions()
		c, err := worker.Dial(options)
		if err != nil {
			return err
		}
		defer c.Close()
		return runAudit(cmd.Context(), c, options.TaskQueue, cmd.OutOrStdout())
	},
}

// runAudit starts an Audit workflow on taskQueue, waits for it and writes its
// report to w.
func runAudit(ctx context.Context, c client.Client, taskQueue string, w io.Writer) error {
	run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        "conda-audit-" + uuid.NewString(),
		TaskQueue: taskQueue,
	}, conda.Audit, conda.AuditInput{})
	if err != nil {
		return err
	}
	slog.Info("audit started", "workflowID", run.GetID(), "runID", run.GetRunID())

	var output conda.AuditOutput
	if err := run.Get(ctx, &output); err != nil {
		return err
	}
	slog.Info("audit finished", "hostTaskQueue", output.HostTaskQueue)
	if err := compliance.WriteReport(w, output.Results); err != nil {
		return err
	}
	if output.Failed() {
		return errComplianceFailed
	}
	return nil
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
