package tool

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrToolNotFound reports a binary that could not be resolved from PATH.
var ErrToolNotFound = errors.New("tool not found in PATH")

// Result captures a single external tool invocation.
type Result struct {
	Tool       string
	Argv       []string
	OutputFile string
	ExitCode   int
	Stderr     string
	Duration   time.Duration
}

// CommandLine returns the invocation in display form.
func (r *Result) CommandLine() string {
	return strings.Join(r.Argv, " ")
}

// RunError describes a tool that started but exited abnormally.
type RunError struct {
	Tool     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *RunError) Error() string {
	msg := fmt.Sprintf("%s failed (exit %d)", e.Tool, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return msg + ": " + stderr
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Exists reports whether name resolves to an executable in PATH.
func Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes name with args as a structured argument vector, streaming the
// tool's stdout into outputFile. The invocation blocks until the subprocess
// exits. The output file is kept even when the tool fails so partial results
// stay reviewable; stderr is captured and attached to the returned Result.
func Run(outputFile, name string, args ...string) (*Result, error) {
	result := &Result{
		Tool:       name,
		Argv:       append([]string{name}, args...),
		OutputFile: outputFile,
		ExitCode:   -1,
	}

	if !Exists(name) {
		return result, fmt.Errorf("%s: %w", name, ErrToolNotFound)
	}

	outfile, err := os.Create(outputFile)
	if err != nil {
		return result, fmt.Errorf("create output file %s: %v", outputFile, err)
	}
	defer outfile.Close()

	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = outfile
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	result.Duration = time.Since(start)
	result.Stderr = strings.TrimSpace(stderr.String())

	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}
	if err != nil {
		return result, &RunError{Tool: name, ExitCode: result.ExitCode, Stderr: result.Stderr, Err: err}
	}

	result.ExitCode = 0
	return result, nil
}
