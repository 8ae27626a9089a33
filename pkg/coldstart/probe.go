// Package coldstart reports invocation timestamps used to measure the
// latency a platform adds before handler code runs.
package coldstart

import (
	"time"

	"github.com/serverless-bench/primebench/pkg/domain"
)

// Probe reads the wall clock. A Probe created with NewProbe advances using
// the monotonic clock from its anchor so that sequential readings never
// decrease. The zero value reads time.Now directly.
type Probe struct {
	anchor time.Time
}

// NewProbe returns a Probe anchored to the current time.
func NewProbe() *Probe {
	return &Probe{anchor: time.Now()}
}

// Now returns the current time in milliseconds since the Unix epoch.
func (p *Probe) Now() domain.ColdStartResult {
	if p.anchor.IsZero() {
		return domain.ColdStartResult{TimestampMillis: time.Now().UnixMilli()}
	}
	return domain.ColdStartResult{
		TimestampMillis: p.anchor.UnixMilli() + time.Since(p.anchor).Milliseconds(),
	}
}
