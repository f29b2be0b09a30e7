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

package instant

import (
	"cmp"
	"fmt"
	"math"
	"time"

	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/tikv/monoclock/pkg/clocksource"
	"github.com/tikv/monoclock/pkg/errs"
)

// Instant is a point on the monotonic clock selected by V.
// The zero value is the instant at tick 0.
type Instant[V Variant] struct {
	// Ties the layout to V, so instants of different clocks are not convertible.
	// It must stay first to keep the size of a uint64.
	_     [0]V
	ticks uint64
}

// Now returns the current instant of the clock V.
func Now[V Variant]() Instant[V] {
	var v V
	return Instant[V]{ticks: v.read()}
}

// NowIncludingSuspend returns the current instant of the clock that includes the
// time the host spent suspended.
func NowIncludingSuspend() Instant[IncludingSuspend] {
	return Now[IncludingSuspend]()
}

// NowExcludingSuspend returns the current instant of the clock that excludes the
// time the host spent suspended.
func NowExcludingSuspend() Instant[ExcludingSuspend] {
	return Now[ExcludingSuspend]()
}

// Timestamp returns the current including-suspend tick count in nanoseconds.
func Timestamp() uint64 {
	return clocksource.NowIncludingSuspend()
}

// FromTimestamp restores an instant from a value returned by AsTimestamp.
// The caller must make sure ts was taken from the clock V during the current
// boot session.
func FromTimestamp[V Variant](ts uint64) Instant[V] {
	return Instant[V]{ticks: ts}
}

// AsTimestamp returns the raw tick count in nanoseconds.
func (t Instant[V]) AsTimestamp() uint64 {
	return t.ticks
}

// CheckedDurationSince returns the time elapsed from earlier to t.
// It returns false if earlier is after t.
// Durations beyond the range of time.Duration saturate.
func (t Instant[V]) CheckedDurationSince(earlier Instant[V]) (time.Duration, bool) {
	if t.ticks < earlier.ticks {
		return 0, false
	}
	diff := t.ticks - earlier.ticks
	if diff > math.MaxInt64 {
		return time.Duration(math.MaxInt64), true
	}
	return time.Duration(diff), true
}

// DurationSince returns the time elapsed from earlier to t.
// It panics if earlier is after t; use CheckedDurationSince when that can happen.
func (t Instant[V]) DurationSince(earlier Instant[V]) time.Duration {
	d, ok := t.CheckedDurationSince(earlier)
	if !ok {
		log.Error("instant went backward",
			zap.String("clock", VariantName[V]()),
			zap.Uint64("earlier", earlier.ticks),
			zap.Uint64("later", t.ticks))
		panic(errs.ErrInstantOrder.GenWithStackByArgs(earlier.ticks, t.ticks))
	}
	return d
}

// Elapsed returns the time elapsed since t on the same clock.
func (t Instant[V]) Elapsed() time.Duration {
	return Now[V]().DurationSince(t)
}

// Sub returns t-u. It panics if u is after t.
func (t Instant[V]) Sub(u Instant[V]) time.Duration {
	return t.DurationSince(u)
}

// Compare returns -1 if t is before u, +1 if t is after u and 0 if they are equal.
func (t Instant[V]) Compare(u Instant[V]) int {
	return cmp.Compare(t.ticks, u.ticks)
}

// Before reports whether t is before u.
func (t Instant[V]) Before(u Instant[V]) bool {
	return t.ticks < u.ticks
}

// After reports whether t is after u.
func (t Instant[V]) After(u Instant[V]) bool {
	return t.ticks > u.ticks
}

// Equal reports whether t and u are the same instant.
func (t Instant[V]) Equal(u Instant[V]) bool {
	return t.ticks == u.ticks
}

// String implements fmt.Stringer.
func (t Instant[V]) String() string {
	return fmt.Sprintf("%s@%d", VariantName[V](), t.ticks)
}
