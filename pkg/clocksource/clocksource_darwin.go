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

//go:build darwin

package clocksource

import "golang.org/x/sys/unix"

const (
	providerName = "darwin"
	suspendAware = true
)

// NowIncludingSuspend returns CLOCK_MONOTONIC_RAW in nanoseconds. The clock
// increments monotonically from an arbitrary point and keeps going while the
// system is asleep.
//
// See https://opensource.apple.com/source/Libc/Libc-1158.1.2/gen/clock_gettime.3.auto.html
func NowIncludingSuspend() uint64 {
	return clockGettime(unix.CLOCK_MONOTONIC_RAW, "CLOCK_MONOTONIC_RAW")
}

// NowExcludingSuspend returns CLOCK_UPTIME_RAW in nanoseconds. It is the same
// counter as NowIncludingSuspend but does not increment while the system is asleep.
func NowExcludingSuspend() uint64 {
	return clockGettime(unix.CLOCK_UPTIME_RAW, "CLOCK_UPTIME_RAW")
}
