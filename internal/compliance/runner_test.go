package compliance

import (
	"context"
	"github.com/kanzihuang/conda-guard/internal/shell"
	"strings"
)

type fakeRunner struct {
	outputs map[string]shell.Output
	err     error
	inputs  []shell.Input
}

func (r *fakeRunner) Run(_ context.Context, input shell.Input) (shell.Output, error) {
	r.inputs = append(r.inputs, input)
	command := strings.Join(append([]string{input.Name}, input.Args...), " ")
	if r.err != nil {
		return shell.Output{Command: command}, r.err
	}
	output, ok := r.outputs[strings.Join(input.Args, " ")]
	if !ok {
		return shell.Output{Command: command, ExitCode: 127}, nil
	}
	output.Command = command
	return output, nil
}

func listExplicit(stdout string) map[string]shell.Output {
	return map[string]shell.Output{"list --explicit": {Stdout: []byte(stdout)}}
}

func getChannels(stdout string) map[string]shell.Output {
	return map[string]shell.Output{"config --get channels": {Stdout: []byte(stdout)}}
}
