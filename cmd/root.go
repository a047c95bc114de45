package cmd

import (
	"errors"
	"fmt"
	"github.com/kanzihuang/conda-guard/internal/compliance"
	"github.com/kanzihuang/conda-guard/internal/shell"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log/slog"
	"os"
)

var errComplianceFailed = errors.New("conda compliance check failed")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "conda-guard",
	Short:        "verify that no conda packages or channels come from the Anaconda defaults channel",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if file := viper.GetString("config"); file != "" {
			viper.SetConfigFile(file)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config %s: %w", file, err)
			}
		}
		var level slog.Level
		if err := level.UnmarshalText([]byte(viper.GetString("log-level"))); err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newChecker() *compliance.Checker {
	return compliance.NewChecker(shell.NewExec(), compliance.Options{
		Executable:       viper.GetString("conda"),
		ForbiddenHost:    viper.GetString("forbidden-host"),
		ForbiddenChannel: viper.GetString("forbidden-channel"),
		MaxListed:        viper.GetInt("max-listed"),
	})
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file.")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error. [$CONDA_GUARD_LOG_LEVEL]")
	viper.MustBindEnv("log-level", "CONDA_GUARD_LOG_LEVEL")

	rootCmd.PersistentFlags().String("conda", compliance.DefaultExecutable, "The conda executable to inspect. [$CONDA_EXE]")
	viper.MustBindEnv("conda", "CONDA_EXE")
	rootCmd.PersistentFlags().String("forbidden-host", compliance.DefaultForbiddenHost, "Package registry host no package may come from. [$CONDA_GUARD_FORBIDDEN_HOST]")
	viper.MustBindEnv("forbidden-host", "CONDA_GUARD_FORBIDDEN_HOST")
	rootCmd.PersistentFlags().String("forbidden-channel", compliance.DefaultForbiddenChannel, "Channel that must not be configured. [$CONDA_GUARD_FORBIDDEN_CHANNEL]")
	viper.MustBindEnv("forbidden-channel", "CONDA_GUARD_FORBIDDEN_CHANNEL")
	rootCmd.PersistentFlags().Int("max-listed", compliance.DefaultMaxListed, "Maximum offending packages listed in a report. [$CONDA_GUARD_MAX_LISTED]")
	viper.MustBindEnv("max-listed", "CONDA_GUARD_MAX_LISTED")

	rootCmd.PersistentFlags().String("address", "127.0.0.1:7233", "The host and port (formatted as host:port) for the Temporal Frontend Service. [$TEMPORAL_ADDRESS]")
	viper.MustBindEnv("address", "TEMPORAL_ADDRESS")
	rootCmd.PersistentFlags().StringP("namespace", "n", "default", "Identifies a Namespace in the Temporal Workflow. [$TEMPORAL_NAMESPACE]")
	viper.MustBindEnv("namespace", "TEMPORAL_NAMESPACE")
	rootCmd.PersistentFlags().StringP("task-queue", "t", "conda-guard", "Task Queue. [$TEMPORAL_TASK_QUEUE]")
	viper.MustBindEnv("task-queue", "TEMPORAL_TASK_QUEUE")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(fmt.Sprintf("error while binding pflags: %v", err))
	}
}
