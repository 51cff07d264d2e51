package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// DefaultLocalTimeout bounds one local model invocation.
const DefaultLocalTimeout = 40 * time.Second

// runner abstracts command execution for testing.
type runner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// osRunner is the production runner backed by os/exec.
type osRunner struct{}

func (osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osRunner) Run(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// LocalClient runs a locally-installed model runner as a blocking
// subprocess: the prompt goes in on stdin, the UTF-8 reply comes back
// on stdout, and the call is bounded by a fixed timeout. Timeouts and
// non-zero exits produce distinguishable errors.
type LocalClient struct {
	command string
	model   string
	timeout time.Duration
	exec    runner
}

// NewLocalClient builds a client for "command run model". Empty
// command defaults to "ollama"; timeout <= 0 defaults to
// DefaultLocalTimeout.
func NewLocalClient(command, model string, timeout time.Duration) *LocalClient {
	if command == "" {
		command = "ollama"
	}
	if timeout <= 0 {
		timeout = DefaultLocalTimeout
	}
	return &LocalClient{command: command, model: model, timeout: timeout, exec: osRunner{}}
}

func (c *LocalClient) Generate(ctx context.Context, prompt string) (string, error) {
	if _, err := c.exec.LookPath(c.command); err != nil {
		return "", fmt.Errorf("local model runner %q not found: %w", c.command, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	err := c.exec.Run(ctx, c.command, []string{"run", c.model}, strings.NewReader(prompt), &stdout, &stderr)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("local backend timeout after %s", c.timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("local backend process error: %s: %w", msg, err)
		}
		return "", fmt.Errorf("local backend process error: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
