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

package clocksource

import (
	"sync"
	"time"
)

// lazyEpoch is a process-wide reference point captured on first use.
// The capture runs exactly once, and every caller of elapsed, including the
// ones racing the first capture, measures against the same start.
type lazyEpoch struct {
	once  sync.Once
	start time.Time
	// onInit runs once, right after the start is captured.
	onInit func()
}

// elapsed returns the time since the epoch was captured, truncated to whole
// milliseconds and expressed in nanoseconds.
func (e *lazyEpoch) elapsed() uint64 {
	e.once.Do(e.init)
	ms := time.Since(e.start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return uint64(ms) * uint64(time.Millisecond)
}

func (e *lazyEpoch) init() {
	e.start = time.Now()
	if e.onInit != nil {
		e.onInit()
	}
}
