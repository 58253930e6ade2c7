package reconciler

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/agentstation/merakiaddr/pkg/errors"
)

// LinePrompter reads answers line by line from a reader. It is used when
// stdin is not a terminal.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter that writes prompts to out and reads
// answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt implements Prompter.
func (p *LinePrompter) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", errors.WrapIO("read", "prompt input", err)
		}
		if line == "" {
			return "", errors.ErrPromptClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadlinePrompter reads answers from an interactive terminal.
type ReadlinePrompter struct {
	rl *readline.Instance
}

// NewReadlinePrompter opens a readline instance on the process terminal.
func NewReadlinePrompter() (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "(y/n) ",
		InterruptPrompt:        "^C",
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &ReadlinePrompter{rl: rl}, nil
}

// Prompt implements Prompter. Ctrl-C cancels the run.
func (p *ReadlinePrompter) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.rl.SetPrompt(prompt)

	line, err := p.rl.Readline()
	switch {
	case err == readline.ErrInterrupt:
		return "", errors.ErrCanceled
	case err == io.EOF:
		return "", errors.ErrPromptClosed
	case err != nil:
		return "", errors.WrapIO("read", "terminal", err)
	}
	return line, nil
}

// Stdout returns a writer that does not interfere with the prompt line.
func (p *ReadlinePrompter) Stdout() io.Writer {
	return p.rl.Stdout()
}

// Close restores the terminal.
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}
