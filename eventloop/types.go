package eventloop

import (
	"container/list"

	"github.com/sirupsen/logrus"
)

// Task is one queued unit of work. A non-nil return propagates out of
// Run as that call's error.
type Task func() error

// TaskKind distinguishes a microtask from a macrotask for the
// WithErrorHandler hook and the logger's task_kind field.
type TaskKind int

const (
	Microtask TaskKind = iota
	Macrotask
)

func (k TaskKind) String() string {
	if k == Macrotask {
		return "macrotask"
	}

	return "microtask"
}

// Option configures a Loop at construction time.
type Option func(*Loop)

// WithLogger injects a *logrus.Logger the loop reports uncaught task
// errors to at Error level. A nil logger (the default) disables
// reporting.
func WithLogger(logger *logrus.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// WithErrorHandler registers a hook invoked, in addition to any
// logger, whenever a task returns a non-nil error. Purely
// observational: it cannot suppress the error's propagation out of Run.
func WithErrorHandler(handler func(err error, kind TaskKind)) Option {
	return func(l *Loop) { l.onTaskError = handler }
}

// Loop is Corten's single-threaded cooperative scheduler. It is not
// safe for concurrent use from more than one goroutine.
type Loop struct {
	microtasks *list.List
	macrotasks *list.List

	stopped  bool
	executed int

	logger      *logrus.Logger
	onTaskError func(err error, kind TaskKind)
}

// New returns an empty, running Loop.
func New(opts ...Option) *Loop {
	l := &Loop{
		microtasks: list.New(),
		macrotasks: list.New(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Stats summarizes the loop's current queue depths and lifetime
// executed-task count.
type Stats struct {
	PendingMicrotasks int
	PendingMacrotasks int
	Executed          int
}

// Stats reports l's current queue depths and total tasks executed.
func (l *Loop) Stats() Stats {
	return Stats{
		PendingMicrotasks: l.microtasks.Len(),
		PendingMacrotasks: l.macrotasks.Len(),
		Executed:          l.executed,
	}
}
