// Package notify delivers short user-visible notices raised by workflows.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Level is the severity of a notice.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notice is one user-visible message.
type Notice struct {
	Level   Level
	Message string
}

// Notifier receives notices.
type Notifier interface {
	Notify(Notice)
}

// Infof sends an informational notice.
func Infof(n Notifier, format string, args ...any) {
	n.Notify(Notice{Level: Info, Message: fmt.Sprintf(format, args...)})
}

// Successf sends a success notice.
func Successf(n Notifier, format string, args ...any) {
	n.Notify(Notice{Level: Success, Message: fmt.Sprintf(format, args...)})
}

// Warnf sends a warning notice.
func Warnf(n Notifier, format string, args ...any) {
	n.Notify(Notice{Level: Warning, Message: fmt.Sprintf(format, args...)})
}

// Errorf sends an error notice.
func Errorf(n Notifier, format string, args ...any) {
	n.Notify(Notice{Level: Error, Message: fmt.Sprintf(format, args...)})
}

// Console prints notices as colored lines.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole creates a Console that writes to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

var prefixes = map[Level]*color.Color{
	Info:    color.New(color.FgCyan),
	Success: color.New(color.FgGreen, color.Bold),
	Warning: color.New(color.FgYellow),
	Error:   color.New(color.FgRed, color.Bold),
}

var symbols = map[Level]string{
	Info:    "i",
	Success: "✓",
	Warning: "!",
	Error:   "✗",
}

// Notify implements Notifier.
func (c *Console) Notify(n Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = prefixes[n.Level].Fprint(c.out, symbols[n.Level]+" ")
	_, _ = fmt.Fprintln(c.out, n.Message)
}

// Recorder keeps every notice in memory.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify implements Notifier.
func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of the recorded notices.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Last returns the most recent notice and whether there was one.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// Discard drops every notice.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Notice) {}
