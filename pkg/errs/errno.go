// Copyright 2020 TiKV Project Authors.
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

package errs

import "github.com/pingcap/errors"

// instant errors
var (
	ErrInstantOrder   = errors.Normalize("instant %d is later than instant %d, the earlier instant must not be after the later one", errors.RFCCodeText("MONO:instant:ErrInstantOrder"))
	ErrInvalidVariant = errors.Normalize("invalid clock variant %s, expect one of including, excluding", errors.RFCCodeText("MONO:instant:ErrInvalidVariant"))
)

// clock source errors
var (
	ErrReadClock              = errors.Normalize("read clock %s failed", errors.RFCCodeText("MONO:clocksource:ErrReadClock"))
	ErrClockSourceUnavailable = errors.Normalize("clock source entry point %s is unavailable", errors.RFCCodeText("MONO:clocksource:ErrClockSourceUnavailable"))
)

// suspend monitor errors
var (
	ErrMonitorClockBackward = errors.Normalize("monotonic clock went backward", errors.RFCCodeText("MONO:monitor:ErrMonitorClockBackward"))
	ErrMonitorStarted       = errors.Normalize("monitor %s has already been started", errors.RFCCodeText("MONO:monitor:ErrMonitorStarted"))
)

// config errors
var (
	ErrLoadConfig     = errors.Normalize("load config from %s failed", errors.RFCCodeText("MONO:config:ErrLoadConfig"))
	ErrInvalidConfig  = errors.Normalize("invalid config: %s", errors.RFCCodeText("MONO:config:ErrInvalidConfig"))
	ErrParseTimestamp = errors.Normalize("parse timestamp %s failed", errors.RFCCodeText("MONO:config:ErrParseTimestamp"))
)

// log errors
var (
	ErrInitLogger = errors.Normalize("init logger error", errors.RFCCodeText("MONO:log:ErrInitLogger"))
)
