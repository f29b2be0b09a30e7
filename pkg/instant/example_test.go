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

package instant_test

import (
	"fmt"
	"time"

	"github.com/tikv/monoclock/pkg/instant"
)

func ExampleNowIncludingSuspend() {
	start := instant.NowIncludingSuspend()
	time.Sleep(2 * time.Millisecond)
	fmt.Println(start.Elapsed() >= 2*time.Millisecond)
	// Output: true
}

func ExampleFromTimestamp() {
	stored := instant.NowExcludingSuspend().AsTimestamp()

	// Later, in the same process or boot session.
	restored := instant.FromTimestamp[instant.ExcludingSuspend](stored)
	if d, ok := instant.NowExcludingSuspend().CheckedDurationSince(restored); ok {
		fmt.Println(d >= 0)
	}
	// Output: true
}
