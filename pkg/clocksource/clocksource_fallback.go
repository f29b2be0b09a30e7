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

//go:build !darwin && !linux && !windows

package clocksource

import (
	"runtime"
	"time"

	"github.com/pingcap/log"
	"go.uber.org/zap"
)

const (
	providerName = "fallback"
	suspendAware = false
)

var epoch = &lazyEpoch{
	onInit: func() {
		log.Warn("no monotonic clock source for this platform, timestamps are relative to the first read and exclude suspend",
			zap.String("goos", runtime.GOOS),
			zap.String("goarch", runtime.GOARCH),
			zap.Duration("granularity", time.Millisecond))
	},
}

// NowIncludingSuspend returns the time since the first read in this process.
// Suspend time is not observable here, so it behaves like NowExcludingSuspend.
func NowIncludingSuspend() uint64 {
	return epoch.elapsed()
}

// NowExcludingSuspend returns the time since the first read in this process,
// with millisecond granularity.
func NowExcludingSuspend() uint64 {
	return epoch.elapsed()
}
