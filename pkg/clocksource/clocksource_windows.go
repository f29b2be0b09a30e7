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

//go:build windows

package clocksource

import (
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"github.com/tikv/monoclock/pkg/errs"
)

const (
	providerName = "windows"
	suspendAware = true
)

// Windows counts interrupt time in a system time unit of 100 nanoseconds.
const systemTimeUnit = 100

// Both entry points are resolved while the package initializes, so a host that
// lacks them fails before any clock is read instead of on first use.
func init() {
	for _, proc := range []*windows.LazyProc{procQueryInterruptTime, procQueryUnbiasedInterruptTime} {
		if err := proc.Find(); err != nil {
			log.Error("resolve clock entry point failed", zap.String("proc", proc.Name), errs.ZapError(err))
			panic(errs.ErrClockSourceUnavailable.Wrap(err).GenWithStackByArgs(proc.Name))
		}
	}
}

// NowIncludingSuspend returns the interrupt-time count in nanoseconds. It includes
// the time the system spent in sleep or hibernation.
//
// See https://docs.microsoft.com/en-us/windows/win32/api/realtimeapiset/nf-realtimeapiset-queryinterrupttime
func NowIncludingSuspend() uint64 {
	var interruptTime uint64
	queryInterruptTime(&interruptTime)
	return interruptTime * systemTimeUnit
}

// NowExcludingSuspend returns the unbiased interrupt-time count in nanoseconds.
// It does not include the time the system spent in sleep or hibernation.
//
// See https://docs.microsoft.com/en-us/windows/win32/api/realtimeapiset/nf-realtimeapiset-queryunbiasedinterrupttime
func NowExcludingSuspend() uint64 {
	return readUnbiasedInterruptTime(queryUnbiasedInterruptTime)
}

func readUnbiasedInterruptTime(query func(*uint64) bool) uint64 {
	var interruptTime uint64
	if !query(&interruptTime) {
		err := windows.GetLastError()
		log.Error("read monotonic clock failed", zap.String("clock", "QueryUnbiasedInterruptTime"), errs.ZapError(err))
		panic(errs.ErrReadClock.GenWithStackByArgs("QueryUnbiasedInterruptTime"))
	}
	return interruptTime * systemTimeUnit
}
