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

// Package instant provides monotonic timestamps tagged with the clock they came from.
//
// An Instant[IncludingSuspend] keeps counting while the host sleeps or hibernates,
// an Instant[ExcludingSuspend] does not. The two are different types, so they can
// not be compared or subtracted from each other:
//
//	start := instant.NowIncludingSuspend()
//	time.Sleep(2 * time.Millisecond)
//	fmt.Println(start.Elapsed() >= 2*time.Millisecond) // true
//
//	instant.NowExcludingSuspend().Sub(start) // does not compile
//
// Ticks are nanoseconds since an arbitrary point fixed at boot. They can be stored
// with AsTimestamp and restored with FromTimestamp, but only the caller knows which
// clock and which boot session a stored value belongs to. Values taken before a
// reboot or on another host are meaningless here and are not detected.
package instant

import (
	"github.com/tikv/monoclock/pkg/clocksource"
)

// Variant is the set of clocks an Instant can come from.
type Variant interface {
	IncludingSuspend | ExcludingSuspend

	read() uint64
	String() string
}

// IncludingSuspend marks instants read from a clock that keeps counting while the
// host is suspended.
type IncludingSuspend struct{}

func (IncludingSuspend) read() uint64 { return clocksource.NowIncludingSuspend() }

// String implements fmt.Stringer.
func (IncludingSuspend) String() string { return "including-suspend" }

// ExcludingSuspend marks instants read from a clock that stops while the host is
// suspended.
type ExcludingSuspend struct{}

func (ExcludingSuspend) read() uint64 { return clocksource.NowExcludingSuspend() }

// String implements fmt.Stringer.
func (ExcludingSuspend) String() string { return "excluding-suspend" }

// VariantName returns the name of V.
func VariantName[V Variant]() string {
	var v V
	return v.String()
}
