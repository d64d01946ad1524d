// Package eventloop implements Corten's cooperative event loop (C7):
// the single scheduler Promises and timers run on, built from two FIFO
// queues, microtasks and macrotasks, and a strict draining
// discipline.
//
// Run executes, while the loop is not stopped and either queue is
// non-empty:
//
//  1. Drain every microtask, front to back. A microtask queued during
//     this drain (by another microtask) joins the same drain; it does
//     not wait for a macrotask to run first.
//  2. Run exactly one macrotask, if the macrotask queue is non-empty.
//  3. Repeat.
//
// Stop, called from within a running task, sets a flag checked before
// every pop in both steps above; the task that called it still runs to
// completion, but nothing further is popped until a later Run call.
// Stop never discards queued tasks.
//
// A task's returned error propagates out of Run immediately; by
// contract it does not cancel tasks queued after it unless Stop was
// also called. A later Run call resumes draining where the error
// interrupted it. Reporting policy for that error is delegated to the
// host, realized here as an optional injected *logrus.Logger and an
// optional observer hook invoked alongside it.
package eventloop
