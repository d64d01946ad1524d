package eventloop

import "github.com/sirupsen/logrus"

// QueueMicrotask appends task to the microtask queue.
func (l *Loop) QueueMicrotask(task Task) {
	l.microtasks.PushBack(task)
}

// QueueTask appends task to the macrotask queue.
func (l *Loop) QueueTask(task Task) {
	l.macrotasks.PushBack(task)
}

// Stop requests the loop halt before its next pop, in either queue.
// The task that calls Stop still runs to completion. Queues are left
// intact; a later call to Run resumes draining them.
func (l *Loop) Stop() {
	l.stopped = true
}

// Run drives the loop: drain all microtasks (including
// ones queued during the drain), run exactly one macrotask if any is
// queued, and repeat, until the loop is stopped or both queues are
// empty. A task's returned error propagates out of Run immediately;
// the loop is not implicitly stopped by it, so a subsequent Run call
// continues with whatever remains queued.
func (l *Loop) Run() error {
	l.stopped = false

	for !l.stopped && (l.microtasks.Len() > 0 || l.macrotasks.Len() > 0) {
		if err := l.drainMicrotasks(); err != nil {
			return err
		}
		if l.stopped {
			return nil
		}

		if l.macrotasks.Len() > 0 {
			if err := l.runOne(Macrotask); err != nil {
				return err
			}
		}
	}

	return nil
}

func (l *Loop) drainMicrotasks() error {
	for !l.stopped && l.microtasks.Len() > 0 {
		if err := l.runOne(Microtask); err != nil {
			return err
		}
	}

	return nil
}

func (l *Loop) runOne(kind TaskKind) error {
	var task Task
	switch kind {
	case Microtask:
		front := l.microtasks.Front()
		task = front.Value.(Task)
		l.microtasks.Remove(front)
	default:
		front := l.macrotasks.Front()
		task = front.Value.(Task)
		l.macrotasks.Remove(front)
	}

	l.executed++
	err := task()
	if err != nil {
		if l.onTaskError != nil {
			l.onTaskError(err, kind)
		}
		if l.logger != nil {
			l.logger.WithFields(logrus.Fields{"task_kind": kind.String()}).Error(err)
		}
	}

	return err
}
