package tween

import (
	"time"

	"github.com/sirupsen/logrus"
)

// debugStats holds per-update counters. Only logged when Manager.debug is
// true.
type debugStats struct {
	active    int // at the start of the pass
	merged    int // staged tweens moved into the active set
	completed int
	cancelled int
	passTime  time.Duration
}

// debugLog writes the stats of one Update at debug level.
func (m *Manager) debugLog(stats debugStats) {
	if !m.debug {
		return
	}
	m.log.WithFields(logrus.Fields{
		"active":    stats.active,
		"merged":    stats.merged,
		"completed": stats.completed,
		"cancelled": stats.cancelled,
		"pass":      stats.passTime,
	}).Debug("tween update")
}
