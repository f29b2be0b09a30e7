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

//go:build linux

package clocksource

import "golang.org/x/sys/unix"

const (
	providerName = "linux"
	suspendAware = true
)

// NowIncludingSuspend returns CLOCK_BOOTTIME in nanoseconds.
// It is CLOCK_MONOTONIC plus the time the system spent suspended.
func NowIncludingSuspend() uint64 {
	return clockGettime(unix.CLOCK_BOOTTIME, "CLOCK_BOOTTIME")
}

// NowExcludingSuspend returns CLOCK_MONOTONIC in nanoseconds.
// It does not advance while the system is suspended.
func NowExcludingSuspend() uint64 {
	return clockGettime(unix.CLOCK_MONOTONIC, "CLOCK_MONOTONIC")
}
