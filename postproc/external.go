package postproc

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ExternalProgram invokes an external executable with the file path appended
// to its argument list and waits for it to exit. The program is expected to
// edit the file in place; the unit itself never inspects the content.
type ExternalProgram struct {
	command []string
	check   bool
	timeout time.Duration
}

// NewExternalProgram builds a unit running the given program and arguments.
// Non-zero exit status is treated as a hard failure unless [ExternalProgram.NoCheck]
// is applied.
func NewExternalProgram(command ...string) *ExternalProgram {
	return &ExternalProgram{command: command, check: true}
}

// NoCheck tolerates a non-zero exit status without failing the node. Launch
// failures still fail.
func (p *ExternalProgram) NoCheck() *ExternalProgram {
	p.check = false
	return p
}

// WithTimeout kills the program if it has not exited after d.
func (p *ExternalProgram) WithTimeout(d time.Duration) *ExternalProgram {
	p.timeout = d
	return p
}

// Name implements PostProcessor.
func (p *ExternalProgram) Name() string { return "run-program" }

// RunResult is the explicit outcome of one external invocation: either the
// program could not be launched, or it exited with a status code.
type RunResult struct {
	Command  string
	ExitCode int
	Launch   error
}

// Success reports a clean zero exit.
func (r RunResult) Success() bool { return r.Launch == nil && r.ExitCode == 0 }

// ExitStatusError is returned in checking mode when the program exits
// non-zero.
type ExitStatusError struct {
	Command  string
	ExitCode int
}

// Error implements the error interface.
func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("postproc: %s exited with status %d", e.Command, e.ExitCode)
}

// ProcessFile implements FilePostProcessor. The file path is returned
// unchanged: the external program edits in place.
func (p *ExternalProgram) ProcessFile(path string) (string, error) {
	if len(p.command) == 0 {
		return path, errors.New("postproc: no program configured")
	}
	res := p.run(path)
	if res.Launch != nil {
		return path, fmt.Errorf("postproc: launching %s: %w", res.Command, res.Launch)
	}
	if res.ExitCode != 0 && p.check {
		return path, &ExitStatusError{Command: res.Command, ExitCode: res.ExitCode}
	}
	return path, nil
}

func (p *ExternalProgram) run(path string) RunResult {
	args := append(append([]string{}, p.command[1:]...), path)
	ctx := context.Background()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, p.command[0], args...)
	res := RunResult{Command: strings.Join(p.command, " ")}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res
		}
		res.Launch = err
		return res
	}
	return res
}
