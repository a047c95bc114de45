package cmd

import (
	"github.com/kanzihuang/conda-guard/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// workerCmd serves audits for this host until interrupted.
var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "start worker running conda checks for audits",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return worker.Run(temporalOptions(), newChecker())
	},
}

func temporalOptions() worker.Options {
	return worker.Options{
		Address:   viper.GetString("address"),
		Namespace: viper.GetString("namespace"),
		TaskQueue: viper.GetString("task-queue"),
	}
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
