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

//go:build darwin || linux

package clocksource

import (
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/tikv/monoclock/pkg/errs"
)

// clockGettime is the only place a unix provider touches the OS clock.
// clock_gettime cannot fail for a valid clock id, so an error here means the
// host broke its contract and there is nothing sensible to return.
func clockGettime(clockID int32, name string) uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(clockID, &ts); err != nil {
		log.Error("read monotonic clock failed", zap.String("clock", name), errs.ZapError(err))
		panic(errs.ErrReadClock.Wrap(err).GenWithStackByArgs(name))
	}
	return uint64(ts.Nano())
}
