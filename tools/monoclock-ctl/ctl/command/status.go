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

package command

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pingcap/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tikv/monoclock/pkg/clocksource"
	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/instant"
	"github.com/tikv/monoclock/pkg/suspendmon"
	"github.com/tikv/monoclock/pkg/utils/typeutil"
)

type statusResponse struct {
	Provider       string            `json:"provider"`
	SuspendAware   bool              `json:"suspend-aware"`
	MonitorID      string            `json:"monitor-id"`
	Including      uint64            `json:"including-suspend"`
	Excluding      uint64            `json:"excluding-suspend"`
	Samples        uint64            `json:"samples"`
	Events         uint64            `json:"events"`
	Backward       uint64            `json:"backward"`
	TotalSuspended typeutil.Duration `json:"total-suspended"`
	Drift          typeutil.Duration `json:"drift"`
}

func newStatusHandler(monitor *suspendmon.Monitor) http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/status", func(w http.ResponseWriter, _ *http.Request) {
		stats := monitor.Stats()
		resp := statusResponse{
			Provider:       clocksource.Name(),
			SuspendAware:   clocksource.SuspendAware(),
			MonitorID:      monitor.ID(),
			Including:      instant.NowIncludingSuspend().AsTimestamp(),
			Excluding:      instant.NowExcludingSuspend().AsTimestamp(),
			Samples:        stats.Samples,
			Events:         stats.Events,
			Backward:       stats.Backward,
			TotalSuspended: typeutil.NewDuration(stats.TotalSuspended),
			Drift:          typeutil.NewDuration(stats.Drift),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Warn("write status response failed", errs.ZapError(err))
		}
	}).Methods(http.MethodGet)
	return r
}
