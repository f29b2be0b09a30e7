// Copyright 2026 TiKV Project Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package suspendmon watches the host for suspend and hibernation.
//
// The monitor samples the including-suspend and excluding-suspend clocks on a
// fixed interval. Both advance at the same rate while the host runs, so any
// growth of their difference between two samples is time the host spent
// suspended.
package suspendmon

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/instant"
)

// Event describes one detected suspension.
type Event struct {
	MonitorID string
	// At is the including-suspend instant of the sample that detected it.
	At instant.Instant[instant.IncludingSuspend]
	// Suspended is how long the host was suspended.
	Suspended time.Duration
}

// Stats is a snapshot of the monitor counters.
type Stats struct {
	Samples        uint64
	Events         uint64
	Backward       uint64
	TotalSuspended time.Duration
	Drift          time.Duration
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithHandler sets the function called for every detected suspension.
// It runs on the monitor goroutine.
func WithHandler(handler func(Event)) Option {
	return func(m *Monitor) { m.handler = handler }
}

// WithClocks replaces the clocks the monitor samples.
func WithClocks(
	including func() instant.Instant[instant.IncludingSuspend],
	excluding func() instant.Instant[instant.ExcludingSuspend],
) Option {
	return func(m *Monitor) {
		m.nowIncluding = including
		m.nowExcluding = excluding
	}
}

type sample struct {
	including instant.Instant[instant.IncludingSuspend]
	excluding instant.Instant[instant.ExcludingSuspend]
}

// Monitor detects host suspensions.
type Monitor struct {
	id      string
	cfg     Config
	handler func(Event)

	nowIncluding func() instant.Instant[instant.IncludingSuspend]
	nowExcluding func() instant.Instant[instant.ExcludingSuspend]

	running atomic.Bool

	mu    sync.RWMutex
	last  sample
	stats Stats
}

// NewMonitor creates a monitor. cfg is expected to be validated.
func NewMonitor(cfg Config, opts ...Option) *Monitor {
	m := &Monitor{
		id:           uuid.New().String(),
		cfg:          cfg,
		nowIncluding: instant.NowIncludingSuspend,
		nowExcluding: instant.NowExcludingSuspend,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the unique id of the monitor, used to correlate its logs.
func (m *Monitor) ID() string {
	return m.id
}

// Stats returns a snapshot of the monitor counters.
func (m *Monitor) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats
}

// Run samples the clocks until ctx is done. A monitor can only run once at a time.
// It returns an error without sampling if the config is invalid.
func (m *Monitor) Run(ctx context.Context) error {
	if err := m.cfg.Validate(); err != nil {
		log.Error("invalid suspend monitor config", zap.String("monitor-id", m.id), errs.ZapError(err))
		return err
	}
	if !m.running.CompareAndSwap(false, true) {
		return errs.ErrMonitorStarted.FastGenByArgs(m.id)
	}
	defer m.running.Store(false)

	log.Info("start suspend monitor",
		zap.String("monitor-id", m.id),
		zap.Duration("interval", m.cfg.Interval.Duration),
		zap.Duration("threshold", m.cfg.Threshold.Duration))
	m.reset()

	ticker := time.NewTicker(m.cfg.Interval.Duration)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.check()
		case <-ctx.Done():
			log.Info("suspend monitor is stopped", zap.String("monitor-id", m.id))
			return nil
		}
	}
}

func (m *Monitor) read() sample {
	return sample{
		including: m.nowIncluding(),
		excluding: m.nowExcluding(),
	}
}

// reset rebases on a fresh sample. Drift is measured from here, the other
// counters keep accumulating across runs.
func (m *Monitor) reset() {
	cur := m.read()
	m.mu.Lock()
	m.last = cur
	m.stats.Drift = 0
	m.mu.Unlock()
	driftGauge.Set(0)
}

// check takes one sample and compares it with the previous one.
func (m *Monitor) check() {
	cur := m.read()

	m.mu.Lock()
	last := m.last
	m.last = cur
	m.stats.Samples++
	samplesCounter.Inc()

	incDelta, incOK := cur.including.CheckedDurationSince(last.including)
	excDelta, excOK := cur.excluding.CheckedDurationSince(last.excluding)
	if !incOK || !excOK {
		m.stats.Backward++
		m.mu.Unlock()
		m.onBackward(incOK, excOK, last, cur)
		return
	}

	gap := incDelta - excDelta
	m.stats.Drift += gap
	driftGauge.Set(m.stats.Drift.Seconds())
	if gap < m.cfg.Threshold.Duration {
		m.mu.Unlock()
		return
	}
	m.stats.Events++
	m.stats.TotalSuspended += gap
	m.mu.Unlock()

	eventsCounter.Inc()
	suspendedSeconds.Add(gap.Seconds())
	log.Warn("host was suspended",
		zap.String("monitor-id", m.id),
		zap.Duration("suspended", gap),
		zap.Stringer("at", cur.including))
	if m.handler != nil {
		m.handler(Event{MonitorID: m.id, At: cur.including, Suspended: gap})
	}
}

func (m *Monitor) onBackward(incOK, excOK bool, last, cur sample) {
	clocks := make([]string, 0, 2)
	if !incOK {
		clocks = append(clocks, instant.VariantName[instant.IncludingSuspend]())
	}
	if !excOK {
		clocks = append(clocks, instant.VariantName[instant.ExcludingSuspend]())
	}
	for _, clock := range clocks {
		backwardCounter.WithLabelValues(clock).Inc()
		log.Error("monotonic clock went backward",
			zap.String("monitor-id", m.id),
			zap.String("clock", clock),
			zap.Uint64("last-including", last.including.AsTimestamp()),
			zap.Uint64("cur-including", cur.including.AsTimestamp()),
			zap.Uint64("last-excluding", last.excluding.AsTimestamp()),
			zap.Uint64("cur-excluding", cur.excluding.AsTimestamp()),
			errs.ZapError(errs.ErrMonitorClockBackward))
	}
}
