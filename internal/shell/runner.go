package shell

import (
	"context"
	"errors"
	"fmt"
	"github.com/kanzihuang/conda-guard/pkg/conda"
	"io"
	"io/fs"
	"os/exec"
	"strings"
)

const (
	prefixSuffixLength = 32 << 10

	exitCannotExecute   = 126
	exitCommandNotFound = 127
)

type Input struct {
	Name string
	Args []string
}

type Output struct {
	Command  string
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

type Runner interface {
	Run(ctx context.Context, input Input) (Output, error)
}

// Exec runs commands on the local host.
type Exec struct {
	dir string
}

func NewExec() *Exec {
	return &Exec{}
}

// Run executes input.Name with input.Args and waits for it to exit.
// A non-zero exit is reported through Output.ExitCode, not as an error, unless
// ctx ended while the command was running. An
// executable that cannot be found or started is reported as exit code 127 or
// 126 the way a shell would.
func (e *Exec) Run(ctx context.Context, input Input) (Output, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	command := strings.Join(append([]string{input.Name}, input.Args...), " ")
	cmd := exec.CommandContext(ctx, input.Name, input.Args...)
	cmd.Dir = e.dir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Output{Command: command}, err
	}
	stderr := &prefixSuffixSaver{N: prefixSuffixLength}
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		switch {
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
			return Output{Command: command, ExitCode: exitCommandNotFound, Stderr: []byte(err.Error())}, nil
		case errors.Is(err, fs.ErrPermission):
			return Output{Command: command, ExitCode: exitCannotExecute, Stderr: []byte(err.Error())}, nil
		default:
			return Output{Command: command}, err
		}
	}

	stdoutData, err := io.ReadAll(io.LimitReader(stdout, conda.BlobSizeMax+1))
	if err != nil {
		cancel()
		_ = cmd.Wait()
		return Output{Command: command}, err
	}
	if len(stdoutData) > conda.BlobSizeMax {
		cancel()
		_ = cmd.Wait()
		return Output{Command: command}, fmt.Errorf("stdout data is too large: %w", conda.ErrBlobTooLarge)
	}

	err = cmd.Wait()
	// A process killed because ctx ended must not look like a tool failure.
	if ctxErr := ctx.Err(); err != nil && ctxErr != nil {
		return Output{
			Command: command,
			Stdout:  stdoutData,
			Stderr:  stderr.Bytes(),
		}, fmt.Errorf("run %s: %w", command, ctxErr)
	}
	var exitError *exec.ExitError
	switch {
	case err == nil:
		return Output{
			Command: command,
			Stdout:  stdoutData,
			Stderr:  stderr.Bytes(),
		}, nil
	case errors.As(err, &exitError):
		return Output{
			Command:  command,
			ExitCode: exitError.ExitCode(),
			Stdout:   stdoutData,
			Stderr:   stderr.Bytes(),
		}, nil
	default:
		return Output{
			Command:  command,
			ExitCode: 1,
			Stdout:   stdoutData,
			Stderr:   stderr.Bytes(),
		}, err
	}
}
