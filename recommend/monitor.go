package recommend

import (
	"log/slog"

	"github.com/poiesic/wayfarer/core"
)

// Monitor provides hooks to observe the recommendation pipeline.
// Implement this interface to track intermediate steps during a request.
type Monitor interface {
	Start(pref *core.Preference)
	AfterJoin(candidates, dropped int)
	AfterSemanticRank(order []int, semantic bool)
	AfterScoring(scored []*core.Recommendation)
	Finish(results []*core.Recommendation)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.Preference)                {}
func (n *noopMonitor) AfterJoin(_, _ int)                      {}
func (n *noopMonitor) AfterSemanticRank(_ []int, _ bool)       {}
func (n *noopMonitor) AfterScoring(_ []*core.Recommendation)   {}
func (n *noopMonitor) Finish(_ []*core.Recommendation)         {}

// LogMonitor logs pipeline stages at debug level.
type LogMonitor struct {
	Logger *slog.Logger
}

var _ Monitor = (*LogMonitor)(nil)

func (m *LogMonitor) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}

func (m *LogMonitor) Start(pref *core.Preference) {
	m.logger().Debug("recommendation started",
		"budget", pref.Budget, "climate", pref.Climate,
		"activities", pref.Activities, "durationDays", pref.DurationDays)
}

func (m *LogMonitor) AfterJoin(candidates, dropped int) {
	m.logger().Debug("joined packages to destinations", "candidates", candidates, "dropped", dropped)
}

func (m *LogMonitor) AfterSemanticRank(order []int, semantic bool) {
	m.logger().Debug("pre-ranked candidates", "finalists", len(order), "semantic", semantic)
}

func (m *LogMonitor) AfterScoring(scored []*core.Recommendation) {
	m.logger().Debug("scored finalists", "count", len(scored))
}

func (m *LogMonitor) Finish(results []*core.Recommendation) {
	m.logger().Debug("recommendation finished", "results", len(results))
}
