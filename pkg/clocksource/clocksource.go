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

// Package clocksource reads the host's monotonic counters.
//
// Exactly one provider is compiled in per target:
//
//   - darwin, ios: CLOCK_MONOTONIC_RAW and CLOCK_UPTIME_RAW.
//   - linux, android: CLOCK_BOOTTIME and CLOCK_MONOTONIC.
//   - windows: QueryInterruptTime and QueryUnbiasedInterruptTime.
//   - anything else: elapsed time since the first read in this process.
//
// Every provider exposes NowIncludingSuspend and NowExcludingSuspend, both returning
// nanoseconds since an arbitrary, boot-relative epoch. Values are only comparable
// within one boot session and for the same function.
package clocksource

// Name returns the name of the provider compiled into this binary.
func Name() string {
	return providerName
}

// SuspendAware reports whether NowIncludingSuspend really keeps counting while the
// host is suspended. It is false on the fallback provider, where both functions
// behave like NowExcludingSuspend.
func SuspendAware() bool {
	return suspendAware
}
