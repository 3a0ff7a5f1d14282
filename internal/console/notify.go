// Package console holds the admin-side controllers that keep a local view of a
// remote resource collection in step with the API.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Level is the severity of a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Toast is one transient notification.
type Toast struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier surfaces the outcome of user actions. It is the only user-visible error channel.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// ConsoleNotifier prints toasts to a writer and mirrors them to the logger.
type ConsoleNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	logger *slog.Logger
}

// NewConsoleNotifier returns a notifier writing to out.
func NewConsoleNotifier(out io.Writer, logger *slog.Logger) *ConsoleNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ConsoleNotifier{out: out, logger: logger}
}

func (n *ConsoleNotifier) Success(msg string) { n.emit(LevelSuccess, msg) }
func (n *ConsoleNotifier) Error(msg string)   { n.emit(LevelError, msg) }
func (n *ConsoleNotifier) Info(msg string)    { n.emit(LevelInfo, msg) }

func (n *ConsoleNotifier) emit(level Level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	marker := map[Level]string{LevelSuccess: "✓", LevelError: "✗", LevelInfo: "•"}[level]
	fmt.Fprintf(n.out, "%s %s\n", marker, msg)

	logLevel := slog.LevelDebug
	if level == LevelError {
		logLevel = slog.LevelWarn
	}
	n.logger.Log(context.Background(), logLevel, "Toast", slog.String("level", string(level)), slog.String("message", msg))
}

// Recorder keeps every toast in memory.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
	now    func() time.Time
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }
func (r *Recorder) Error(msg string)   { r.add(LevelError, msg) }
func (r *Recorder) Info(msg string)    { r.add(LevelInfo, msg) }

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.toasts = append(r.toasts, Toast{Level: level, Message: msg, At: r.now()})
}

// Toasts returns a copy of everything recorded so far.
func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Toast(nil), r.toasts...)
}

// Last returns the most recent toast, or the zero Toast when none was recorded.
func (r *Recorder) Last() Toast {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.toasts) == 0 {
		return Toast{}
	}

	return r.toasts[len(r.toasts)-1]
}
