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

package suspendmon

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "monoclock"
	subsystem = "suspendmon"
)

var (
	samplesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "samples_total",
			Help:      "Counter of clock samples taken by the suspend monitor.",
		})

	eventsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "events_total",
			Help:      "Counter of detected host suspensions.",
		})

	suspendedSeconds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "suspended_seconds_total",
			Help:      "Total time (s) the host spent suspended, as seen by detected suspensions.",
		})

	backwardCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "backward_total",
			Help:      "Counter of samples where a monotonic clock was observed going backward.",
		}, []string{"clock"})

	driftGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "drift_seconds",
			Help:      "Accumulated difference (s) between the including-suspend and excluding-suspend clocks since the monitor started.",
		})
)

func init() {
	prometheus.MustRegister(samplesCounter)
	prometheus.MustRegister(eventsCounter)
	prometheus.MustRegister(suspendedSeconds)
	prometheus.MustRegister(backwardCounter)
	prometheus.MustRegister(driftGauge)
}
