package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// ErrDeclined is returned when the operator answers no at a confirmation prompt.
var ErrDeclined = errors.New("action cancelled")

// Confirmer blocks until the operator accepts or declines a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// AssumeYes accepts every prompt. Used with --yes.
var AssumeYes Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })

// Prompt asks on out and reads a y/N answer from in. Anything but y or yes declines.
// A single reader goroutine owns in, so an answer typed after a cancelled prompt
// goes to the next one.
type Prompt struct {
	mu    sync.Mutex
	in    *bufio.Reader
	out   io.Writer
	start sync.Once
	lines chan promptAnswer
}

// NewPrompt returns a terminal confirmation prompt.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out, lines: make(chan promptAnswer)}
}

type promptAnswer struct {
	line string
	err  error
}

// readLines feeds lines until in fails, then closes the channel.
func (p *Prompt) readLines() {
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		p.lines <- promptAnswer{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Confirm implements Confirmer. There is no timeout; only ctx cancellation unblocks it.
// Once in is exhausted every prompt declines.
func (p *Prompt) Confirm(ctx context.Context, prompt string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	p.start.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return false, errors.WithStack(ctx.Err())
	case a, ok := <-p.lines:
		if !ok {
			return false, nil
		}
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return false, errors.Wrap(a.err, "read confirmation")
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

// Guarded runs action only after confirmer accepts prompt, reporting the outcome through notifier.
// A declined prompt issues nothing and returns ErrDeclined.
func Guarded(ctx context.Context, confirmer Confirmer, notifier Notifier, prompt string, action func(context.Context) error) error {
	ok, err := confirmer.Confirm(ctx, prompt)
	if err != nil {
		notifier.Error("Confirmation failed: " + err.Error())

		return err
	}
	if !ok {
		notifier.Info("Cancelled")

		return ErrDeclined
	}

	return action(ctx)
}
