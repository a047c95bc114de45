package cmd

import (
	"github.com/kanzihuang/conda-guard/internal/compliance"
	"github.com/kanzihuang/conda-guard/pkg/conda"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "run the conda channel checks on this host",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := newChecker().Run(cmd.Context())
		if err != nil {
			return err
		}
		if err := compliance.WriteReport(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		if conda.Failed(results) {
			return errComplianceFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
