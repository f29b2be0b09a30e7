// Copyright 2019 TiKV Project Authors.
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

package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// LeakOptions filters goroutines that outlive a test for reasons outside this module:
//
//	func TestMain(m *testing.M) {
//		goleak.VerifyTestMain(m, testutil.LeakOptions...)
//	}
var LeakOptions = []goleak.Option{
	goleak.IgnoreTopFunction("sync.runtime_notifyListWait"),
	// natefinch/lumberjack#56, the log file rotation goroutine never exits.
	goleak.IgnoreTopFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
	goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
	// Started once by signal.Notify and kept for the life of the process.
	goleak.IgnoreTopFunction("os/signal.signal_recv"),
}

// RegisterLeakDetection fails t if goroutines started during the test are still
// running when it finishes. Goroutines that were already running are ignored.
func RegisterLeakDetection(t *testing.T) {
	opts := append([]goleak.Option{goleak.IgnoreCurrent()}, LeakOptions...)
	t.Cleanup(func() {
		goleak.VerifyNone(t, opts...)
	})
}
