package tween

import (
	"time"

	"github.com/sirupsen/logrus"
)

// completeAllStep is the time step CompleteAll feeds to Update. It only
// needs to exceed any realistic delay plus duration.
const completeAllStep = 100000

// completeAllMaxPasses bounds CompleteAll when completion callbacks keep
// creating new tweens.
const completeAllMaxPasses = 16

// Manager owns every live tween instance and ticks them once per frame.
// Instances created while the manager is updating are staged and join the
// active set after the pass, so a completion callback may safely start the
// next tween. A Manager is not safe for concurrent use.
type Manager struct {
	active  []*Instance
	pending []*Instance

	initialized  bool
	updating     bool
	nextID       uint64
	clearPending bool

	sink  EventSink
	log   logrus.FieldLogger
	debug bool
	stats debugStats
}

// NewManager creates a started manager.
func NewManager() *Manager {
	m := &Manager{log: std}
	m.Startup()
	return m
}

// Startup empties the manager and marks it ready for Create. Calling it on
// a running manager drops every tween without callbacks.
func (m *Manager) Startup() {
	m.reset()
	m.initialized = true
}

// Shutdown empties the manager. Create panics until Startup is called again.
func (m *Manager) Shutdown() {
	m.reset()
	m.initialized = false
}

// reset detaches every tween. During a pass the active set is compacted
// when the pass ends, so callbacks may call Startup or Shutdown.
func (m *Manager) reset() {
	for _, in := range m.active {
		in.detached = true
	}
	if !m.updating {
		clear(m.active)
		m.active = m.active[:0]
	}
	clear(m.pending)
	m.pending = m.pending[:0]
}

// IsInitialized reports whether Startup has run without a later Shutdown.
func (m *Manager) IsInitialized() bool {
	return m.initialized
}

// Create cancels every running tween on target and stages a new one that
// starts ticking on the next Update. The caller configures it and calls
// Begin. Panics if the manager is shut down or target is nil.
func (m *Manager) Create(target Target, duration, delay float64) *Instance {
	m.mustBeInitialized()
	m.Clear(target)
	return m.stage(target, duration, delay)
}

// CreateAdditive is Create without cancelling existing tweens on target.
// Concurrent tweens writing the same attribute leave it at whichever wrote
// last in a tick.
func (m *Manager) CreateAdditive(target Target, duration, delay float64) *Instance {
	m.mustBeInitialized()
	return m.stage(target, duration, delay)
}

func (m *Manager) mustBeInitialized() {
	if !m.initialized {
		panic("tween: Create on a manager that is not started")
	}
}

func (m *Manager) stage(target Target, duration, delay float64) *Instance {
	in := NewInstance(target, duration, delay)
	m.nextID++
	in.id = m.nextID
	in.log = m.log
	in.sink = m.sink
	m.pending = append(m.pending, in)
	return in
}

// Clear cancels every active tween whose target is alive and equal to
// target and returns how many were cancelled. Cancelled tweens keep the
// values they last wrote and never fire OnComplete. Staged tweens are only
// affected when SetClearPending is enabled.
func (m *Manager) Clear(target Target) int {
	if target == nil || !target.Alive() {
		return 0
	}
	n := 0
	for _, in := range m.active {
		if in.detached || in.target != target {
			continue
		}
		in.detached = true
		n++
		m.stats.cancelled++
		in.emit(EventCancelled)
	}
	if n > 0 && !m.updating {
		m.compact()
	}

	if m.clearPending {
		kept := m.pending[:0]
		for _, in := range m.pending {
			if in.target == target {
				in.detached = true
				n++
				m.stats.cancelled++
				in.emit(EventCancelled)
				continue
			}
			kept = append(kept, in)
		}
		clear(m.pending[len(kept):])
		m.pending = kept
	}
	return n
}

// Update advances every active tween by dt seconds. Tweens are visited in
// reverse creation order. A completed tween leaves the active set before its
// OnComplete runs. Tweens staged during the pass are merged at the end.
// Calls made from inside a callback are ignored.
func (m *Manager) Update(dt float64) {
	if m.updating {
		m.log.Warn("Update called from a tween callback; ignored")
		return
	}
	m.updating = true
	defer func() { m.updating = false }()

	var t0 time.Time
	if m.debug {
		t0 = time.Now()
		m.stats.active = len(m.active)
	}

	for i := len(m.active) - 1; i >= 0; i-- {
		in := m.active[i]
		if in.detached {
			continue
		}
		in.Update(dt)
		if in.complete && !in.detached {
			in.detached = true
			m.stats.completed++
			in.completeCleanup()
		}
	}

	m.compact()
	m.stats.merged = len(m.pending)
	m.active = append(m.active, m.pending...)
	clear(m.pending)
	m.pending = m.pending[:0]

	if m.debug {
		m.stats.passTime = time.Since(t0)
		m.debugLog(m.stats)
	}
	m.stats = debugStats{}
}

// compact drops detached instances from the active set, keeping order.
func (m *Manager) compact() {
	n := 0
	for _, in := range m.active {
		if !in.detached {
			m.active[n] = in
			n++
		}
	}
	clear(m.active[n:])
	m.active = m.active[:n]
}

// IsTweening reports whether an active tween targets target. Staged tweens
// are not counted.
func (m *Manager) IsTweening(target Target) bool {
	for _, in := range m.active {
		if !in.detached && in.target == target {
			return true
		}
	}
	return false
}

// CompleteAll fast-forwards every tween to its end, firing completion
// callbacks. Tweens never begun are begun first. Tweens started from
// completion callbacks are completed too, up to a bounded number of passes.
func (m *Manager) CompleteAll() {
	if m.updating {
		m.log.Warn("CompleteAll called from a tween callback; ignored")
		return
	}
	for pass := 0; pass < completeAllMaxPasses; pass++ {
		if pass >= 2 && len(m.active) == 0 && len(m.pending) == 0 {
			return
		}
		m.beginIdle(m.active)
		m.beginIdle(m.pending)
		m.Update(completeAllStep)
	}
	if n := len(m.active) + len(m.pending); n > 0 {
		m.log.WithField("remaining", n).Warn("CompleteAll gave up on tweens that keep restarting")
	}
}

func (m *Manager) beginIdle(list []*Instance) {
	for _, in := range list {
		if !in.begun && !in.detached {
			in.Begin()
		}
	}
}

// ActiveCount returns the number of tweens ticked by Update. Tweens that
// completed or were cancelled earlier in the current pass are not counted.
func (m *Manager) ActiveCount() int {
	n := 0
	for _, in := range m.active {
		if !in.detached {
			n++
		}
	}
	return n
}

// PendingCount returns the number of tweens staged for the next Update.
func (m *Manager) PendingCount() int {
	return len(m.pending)
}

// SetEventSink forwards lifecycle events of tweens created afterwards to
// sink. Pass nil to stop forwarding.
func (m *Manager) SetEventSink(sink EventSink) {
	m.sink = sink
}

// SetLogger replaces the logger used by the manager and the tweens it
// creates afterwards. nil restores the package logger.
func (m *Manager) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = std
	}
	m.log = l
}

// SetClearPending makes Clear (and therefore Create) also cancel tweens
// that are staged but not yet active. Off by default.
func (m *Manager) SetClearPending(enabled bool) {
	m.clearPending = enabled
}

// SetDebugMode enables per-update stats, logged at debug level.
func (m *Manager) SetDebugMode(enabled bool) {
	m.debug = enabled
}
