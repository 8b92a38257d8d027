package scheduler

import (
	"context"
	"log/slog"
	"sort"

	"github.com/vk/nodecanvas/internal/ctxlog"
	"github.com/vk/nodecanvas/internal/metrics"
	"github.com/vk/nodecanvas/internal/spatial"
)

// DefaultScheduler is the reference implementation of Scheduler.
type DefaultScheduler struct {
	logger  *slog.Logger
	index   *spatial.Index
	applier Applier
	metrics *metrics.Recorder

	nodes       map[string]struct{}
	connections map[string]struct{}
	annotations map[string]struct{}

	dragging       bool
	depth          int
	forceImmediate bool
}

// New creates a scheduler that applies dirty ids through applier and bumps the
// version of index. rec may be nil.
func New(ctx context.Context, index *spatial.Index, applier Applier, rec *metrics.Recorder) *DefaultScheduler {
	return &DefaultScheduler{
		logger:      ctxlog.FromContext(ctx).With("component", "scheduler"),
		index:       index,
		applier:     applier,
		metrics:     rec,
		nodes:       make(map[string]struct{}),
		connections: make(map[string]struct{}),
		annotations: make(map[string]struct{}),
	}
}

// MarkNodes implements Scheduler.
func (s *DefaultScheduler) MarkNodes(ids ...string) {
	s.mark(s.nodes, ids)
}

// MarkConnections implements Scheduler.
func (s *DefaultScheduler) MarkConnections(ids ...string) {
	s.mark(s.connections, ids)
}

// MarkAnnotations implements Scheduler.
func (s *DefaultScheduler) MarkAnnotations(ids ...string) {
	s.mark(s.annotations, ids)
}

func (s *DefaultScheduler) mark(set map[string]struct{}, ids []string) {
	if len(ids) == 0 {
		return
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	if s.Deferred() && !s.forceImmediate {
		s.metrics.Deferred(len(ids))
		return
	}
	s.Flush()
}

// Flush implements Scheduler.
func (s *DefaultScheduler) Flush() bool {
	if len(s.nodes) == 0 && len(s.connections) == 0 && len(s.annotations) == 0 {
		return false
	}
	// Swap the sets out first so an applier that marks again cannot loop.
	nodes, conns, anns := s.nodes, s.connections, s.annotations
	s.clearPending()

	for id := range nodes {
		s.applier.ApplyNode(id)
	}
	for id := range conns {
		s.applier.ApplyConnection(id)
	}
	for id := range anns {
		s.applier.ApplyAnnotation(id)
	}
	version := s.index.NotifyChanged()

	s.metrics.Flushed(len(nodes), len(conns), len(anns))
	s.metrics.VersionChanged(version)
	s.logger.Debug("Flushed pending spatial updates.",
		"nodes", len(nodes), "connections", len(conns), "annotations", len(anns), "version", version)
	return true
}

// Batch implements Scheduler.
func (s *DefaultScheduler) Batch(label string, fn func() error) error {
	s.depth++
	s.logger.Debug("Batch opened.", "label", label, "depth", s.depth)
	err := func() error {
		defer func() { s.depth-- }()
		return fn()
	}()
	if s.depth > 0 {
		return err
	}
	if err != nil {
		s.metrics.BatchFailed()
		s.logger.Warn("Batch failed, pending spatial updates kept.", "label", label, "error", err)
		return err
	}
	if !s.dragging {
		s.Flush()
	}
	return nil
}

// BeginDrag implements Scheduler.
func (s *DefaultScheduler) BeginDrag() {
	s.dragging = true
}

// EndDrag implements Scheduler.
func (s *DefaultScheduler) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.depth == 0 {
		s.Flush()
	}
}

// SetForceImmediate implements Scheduler.
func (s *DefaultScheduler) SetForceImmediate(on bool) {
	s.forceImmediate = on
	if on {
		s.Flush()
	}
}

// ForceImmediate implements Scheduler.
func (s *DefaultScheduler) ForceImmediate() bool {
	return s.forceImmediate
}

// Deferred implements Scheduler.
func (s *DefaultScheduler) Deferred() bool {
	return s.dragging || s.depth > 0
}

// Pending implements Scheduler.
func (s *DefaultScheduler) Pending() (nodes, connections, annotations []string) {
	return sortedKeys(s.nodes), sortedKeys(s.connections), sortedKeys(s.annotations)
}

// Reset implements Scheduler.
func (s *DefaultScheduler) Reset() {
	s.clearPending()
	s.dragging = false
}

func (s *DefaultScheduler) clearPending() {
	s.nodes = make(map[string]struct{})
	s.connections = make(map[string]struct{})
	s.annotations = make(map[string]struct{})
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
