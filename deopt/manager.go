package deopt

import (
	"github.com/cortenjs/corten/shape"
	"github.com/cortenjs/corten/value"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultHotDeoptCapacity = 64

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithLogger injects a *logrus.Logger the Manager reports FATAL
// reconstruction failures to at Error level. A nil logger (the
// default) disables reporting; the error is still returned to the
// caller either way.
func WithLogger(logger *logrus.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithHotDeoptCapacity bounds how many distinct (function, bailout
// point, reason) triples the Manager tracks trip counts for (default
// 64). Once full, recording a new triple evicts the coldest tracked one.
func WithHotDeoptCapacity(n int) Option {
	return func(m *Manager) { m.hotCapacity = n }
}

// functionEntry is one registered function's deopt bookkeeping.
type functionEntry struct {
	state    FunctionState
	metadata map[int]*Metadata
}

// pendingRecord is one lazy deopt waiting for a safe point, carrying
// the optimized frame snapshot captured at schedule time. Optimized
// code is permitted to keep running until the safe point, so the
// register/stack state at that later moment can no longer be trusted
// for this bailout.
type pendingRecord struct {
	id     FunctionID
	point  int
	reason BailoutReason
	state  *JITState
}

// Manager owns the deopt state machine for every registered function
// in one isolate: which functions are optimized, which bailout points
// they define, and which lazy deopts are pending a safe point.
type Manager struct {
	tree        *shape.Tree
	functions   map[FunctionID]*functionEntry
	pending     []pendingRecord
	hotCapacity int
	hot         *hotDeoptSet
	logger      *logrus.Logger
	nextValueID uint32
}

// NewManager returns a Manager backed by tree (used to validate escaped
// object shapes during materialization).
func NewManager(tree *shape.Tree, opts ...Option) *Manager {
	m := &Manager{
		tree:        tree,
		functions:   make(map[FunctionID]*functionEntry),
		hotCapacity: defaultHotDeoptCapacity,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.hot = newHotDeoptSet(m.hotCapacity)

	return m
}

func (m *Manager) allocValueID() value.ObjectID {
	m.nextValueID++
	return value.ObjectID(m.nextValueID)
}

// Register publishes id as holding optimized code with the given
// per-bailout-point metadata, transitioning it FRESH -> REGISTERED. A
// function previously RETIRED may be registered again only under a
// fresh FunctionID minted for the re-optimization; re-registering an
// existing id here overwrites its entry and restarts it at REGISTERED.
func (m *Manager) Register(id FunctionID, metadata map[int]*Metadata) {
	m.functions[id] = &functionEntry{state: Registered, metadata: metadata}
}

// Deoptimize processes one bailout at point in function id under mode.
//
// EAGER returns the reconstructed frames immediately and retires the
// function. LAZY enqueues the deopt for the next ProcessPending call
// and returns (nil, nil); the function moves to INVALIDATED
// immediately, even though reconstruction itself is deferred.
func (m *Manager) Deoptimize(id FunctionID, point int, reason BailoutReason, mode Mode, state *JITState) ([]*InterpreterFrame, error) {
	entry, ok := m.functions[id]
	if !ok || entry.state == Retired {
		return nil, ErrUnknownFunction
	}

	meta, ok := entry.metadata[point]
	if !ok {
		return nil, ErrUnknownBailoutPoint
	}

	m.hot.record(hotKey{fn: id, point: point, reason: reason})

	switch mode {
	case Eager:
		frames, err := Reconstruct(m.tree, state, meta, m.allocValueID)
		if err != nil {
			return nil, m.fatal(err, id, point, reason)
		}
		entry.state = Retired

		return frames, nil

	default: // Lazy
		entry.state = Invalidated
		snapshot := state
		if state != nil {
			snapshot = &JITState{
				Registers: append([]value.Value(nil), state.Registers...),
				Stack:     append([]value.Value(nil), state.Stack...),
			}
		}
		m.pending = append(m.pending, pendingRecord{id: id, point: point, reason: reason, state: snapshot})

		return nil, nil
	}
}

// ProcessPending drains every pending lazy deopt in the order it was
// scheduled, reconstructing its frames and retiring its function. It
// is meant to be called at safe points, loop back-edges and function
// exits.
func (m *Manager) ProcessPending() ([][]*InterpreterFrame, error) {
	pending := m.pending
	m.pending = nil

	results := make([][]*InterpreterFrame, 0, len(pending))
	for _, rec := range pending {
		entry, ok := m.functions[rec.id]
		if !ok {
			return nil, ErrUnknownFunction
		}

		meta, ok := entry.metadata[rec.point]
		if !ok {
			return nil, ErrUnknownBailoutPoint
		}

		frames, err := Reconstruct(m.tree, rec.state, meta, m.allocValueID)
		if err != nil {
			return nil, m.fatal(err, rec.id, rec.point, rec.reason)
		}

		entry.state = Retired
		results = append(results, frames)
	}

	return results, nil
}

// Stats summarizes the function population and pending queue.
func (m *Manager) Stats() ManagerStats {
	var s ManagerStats
	for _, entry := range m.functions {
		switch entry.state {
		case Registered:
			s.Registered++
		case Invalidated:
			s.Invalidated++
		case Retired:
			s.Retired++
		}
	}
	s.PendingCount = len(m.pending)

	return s
}

// HotDeopts returns the k (function, bailout point, reason) triples with
// the highest observed trip count, hottest first.
func (m *Manager) HotDeopts(k int) []HotDeopt {
	return m.hot.topK(k)
}

func (m *Manager) fatal(err error, id FunctionID, point int, reason BailoutReason) error {
	wrapped := pkgerrors.Wrapf(err, "deopt: function %s point %d reason %s", id, point, reason)
	if m.logger != nil {
		m.logger.WithFields(logrus.Fields{
			"function_id":   id.String(),
			"bailout_point": point,
			"reason":        reason.String(),
		}).Error(wrapped)
	}

	return wrapped
}

