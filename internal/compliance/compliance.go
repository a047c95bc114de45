// Package compliance checks that a conda installation neither installs packages
// from nor is configured with the restricted Anaconda defaults channel.
package compliance

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"github.com/kanzihuang/conda-guard/internal/shell"
	"github.com/kanzihuang/conda-guard/pkg/conda"
	"log/slog"
	"strings"
)

const (
	DefaultExecutable       = "conda"
	DefaultForbiddenHost    = "repo.anaconda.com"
	DefaultForbiddenChannel = "defaults"
	DefaultMaxListed        = 20
)

type Options struct {
	Executable       string
	ForbiddenHost    string
	ForbiddenChannel string
	MaxListed        int
}

func DefaultOptions() Options {
	return Options{
		Executable:       DefaultExecutable,
		ForbiddenHost:    DefaultForbiddenHost,
		ForbiddenChannel: DefaultForbiddenChannel,
		MaxListed:        DefaultMaxListed,
	}
}

type Checker struct {
	runner  shell.Runner
	options Options
	logger  *slog.Logger
}

// NewChecker returns a Checker running commands with runner. Zero fields of
// options fall back to DefaultOptions.
func NewChecker(runner shell.Runner, options Options) *Checker {
	defaults := DefaultOptions()
	if options.Executable == "" {
		options.Executable = defaults.Executable
	}
	if options.ForbiddenHost == "" {
		options.ForbiddenHost = defaults.ForbiddenHost
	}
	if options.ForbiddenChannel == "" {
		options.ForbiddenChannel = defaults.ForbiddenChannel
	}
	if options.MaxListed <= 0 {
		options.MaxListed = defaults.MaxListed
	}
	return &Checker{
		runner:  runner,
		options: options,
		logger:  slog.Default(),
	}
}

// Packages fails when `conda list --explicit` prints any line referencing the
// forbidden host.
func (c *Checker) Packages(ctx context.Context) (conda.Result, error) {
	output, err := c.run(ctx, "packages", "list", "--explicit")
	if err != nil {
		return conda.Result{}, err
	}
	if output.ExitCode != 0 {
		return c.skipped("packages", output), nil
	}

	var offending []string
	scanner := bufio.NewScanner(bytes.NewReader(output.Stdout))
	scanner.Buffer(make([]byte, 0, 64<<10), conda.BlobSizeMax+1)
	for scanner.Scan() {
		if line := scanner.Text(); strings.Contains(line, c.options.ForbiddenHost) {
			offending = append(offending, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return conda.Result{}, fmt.Errorf("scan %q output: %w", output.Command, err)
	}

	result := conda.Result{
		Check:   "packages",
		Status:  conda.StatusPassed,
		Command: output.Command,
		Total:   len(offending),
	}
	if len(offending) == 0 {
		return result, nil
	}
	listed := offending[:min(len(offending), c.options.MaxListed)]
	result.Status = conda.StatusFailed
	result.Offending = listed
	result.Message = fmt.Sprintf("Found %d packages from %s (%s channel):\n%s",
		len(offending), c.options.ForbiddenHost, c.options.ForbiddenChannel, strings.Join(listed, "\n"))
	c.logger.Warn("forbidden packages installed", "host", c.options.ForbiddenHost, "count", len(offending))
	return result, nil
}

// Channels fails when `conda config --get channels` mentions the forbidden
// channel anywhere in its output.
func (c *Checker) Channels(ctx context.Context) (conda.Result, error) {
	output, err := c.run(ctx, "channels", "config", "--get", "channels")
	if err != nil {
		return conda.Result{}, err
	}
	if output.ExitCode != 0 {
		return c.skipped("channels", output), nil
	}

	stdout := string(output.Stdout)
	result := conda.Result{
		Check:    "channels",
		Status:   conda.StatusPassed,
		Command:  output.Command,
		Channels: ParseChannels(stdout),
	}
	if !strings.Contains(stdout, c.options.ForbiddenChannel) {
		return result, nil
	}
	result.Status = conda.StatusFailed
	result.Message = fmt.Sprintf("The '%s' channel should not be configured in conda. Run: %s config --remove channels %s",
		c.options.ForbiddenChannel, c.options.Executable, c.options.ForbiddenChannel)
	c.logger.Warn("forbidden channel configured", "channel", c.options.ForbiddenChannel)
	return result, nil
}

func (c *Checker) run(ctx context.Context, check string, args ...string) (shell.Output, error) {
	c.logger.Debug("running command", "check", check, "executable", c.options.Executable, "args", args)
	output, err := c.runner.Run(ctx, shell.Input{Name: c.options.Executable, Args: args})
	if err != nil {
		return output, fmt.Errorf("run %s check: %w", check, err)
	}
	return output, nil
}

// skipped treats any non-zero exit as the tool being unavailable.
func (c *Checker) skipped(check string, output shell.Output) conda.Result {
	c.logger.Info("conda not available, skipping check", "check", check, "exitCode", output.ExitCode)
	return conda.Result{
		Check:   check,
		Status:  conda.StatusSkipped,
		Command: output.Command,
		Message: fmt.Sprintf("%s not available (exit code %d)", c.options.Executable, output.ExitCode),
	}
}
