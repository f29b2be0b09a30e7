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

package command

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tikv/monoclock/pkg/clocksource"
	"github.com/tikv/monoclock/pkg/instant"
	"github.com/tikv/monoclock/pkg/suspendmon"
	"github.com/tikv/monoclock/pkg/utils/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, testutil.LeakOptions...)
}

func execute(re *require.Assertions, cmd *cobra.Command, args ...string) string {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	re.NoError(cmd.Execute())
	return buf.String()
}

func TestNowCommand(t *testing.T) {
	re := require.New(t)
	before := instant.NowIncludingSuspend().AsTimestamp()
	output := execute(re, NewNowCommand())
	lines := strings.Split(strings.TrimSpace(output), "\n")
	re.Len(lines, 2)
	re.True(strings.HasPrefix(lines[0], "including-suspend: "))
	re.True(strings.HasPrefix(lines[1], "excluding-suspend: "))
	ts, err := strconv.ParseUint(strings.TrimPrefix(lines[0], "including-suspend: "), 10, 64)
	re.NoError(err)
	re.GreaterOrEqual(ts, before)

	output = execute(re, NewNowCommand(), "--variant", "excluding")
	_, err = strconv.ParseUint(strings.TrimSpace(output), 10, 64)
	re.NoError(err)

	output = execute(re, NewNowCommand(), "-v", "INCLUDING")
	_, err = strconv.ParseUint(strings.TrimSpace(output), 10, 64)
	re.NoError(err)

	output = execute(re, NewNowCommand(), "--variant", "wall")
	re.Contains(output, "Failed to read clock")
	re.Contains(output, "ErrInvalidVariant")
}

func TestElapsedCommand(t *testing.T) {
	re := require.New(t)
	ts := instant.NowExcludingSuspend().AsTimestamp()
	time.Sleep(5 * time.Millisecond)
	output := execute(re, NewElapsedCommand(), strconv.FormatUint(ts, 10), "--variant", "excluding")
	re.True(strings.HasPrefix(output, "elapsed: "), output)

	output = execute(re, NewElapsedCommand(), strconv.FormatUint(math.MaxUint64, 10))
	re.Contains(output, "not taken in this boot session")
	re.Contains(output, "including-suspend")

	output = execute(re, NewElapsedCommand(), "yesterday")
	re.Contains(output, "Failed to parse timestamp")

	output = execute(re, NewElapsedCommand())
	re.Contains(output, "Usage: elapsed <timestamp>")

	output = execute(re, NewElapsedCommand(), "1", "--variant", "both")
	re.Contains(output, "ErrInvalidVariant")
}

func TestInfoCommand(t *testing.T) {
	re := require.New(t)
	output := execute(re, NewInfoCommand())
	re.Contains(output, clocksource.Name())
	re.Contains(output, strconv.FormatBool(clocksource.SuspendAware()))
}

func TestWatchCommand(t *testing.T) {
	re := require.New(t)
	output := execute(re, NewWatchCommand(), "--duration", "100ms", "--interval", "10ms", "--log-level", "warn")
	re.Contains(output, "watching for suspend")
	re.Contains(output, "samples: ")
	re.Contains(output, "suspensions: 0")

	output = execute(re, NewWatchCommand(), "--duration", "-1s")
	re.Contains(output, "Failed to load config")
	re.Contains(output, "duration must not be negative")
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "watch.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestWatchConfig(t *testing.T) {
	re := require.New(t)
	path := writeConfig(t, `
status-addr = "127.0.0.1:9190"
duration = "1m"

[monitor]
interval = "250ms"

[log]
level = "debug"
`)
	cmd := NewWatchCommand()
	re.NoError(cmd.ParseFlags([]string{"--config", path, "--threshold", "1s", "--log-level", "error"}))
	cfg := &watchConfig{}
	re.NoError(cfg.parse(cmd.Flags()))
	re.Equal("127.0.0.1:9190", cfg.StatusAddr)
	re.Equal(time.Minute, cfg.Duration.Duration)
	re.Equal(250*time.Millisecond, cfg.Monitor.Interval.Duration)
	re.Equal(time.Second, cfg.Monitor.Threshold.Duration)
	re.Equal("error", cfg.Log.Level)

	// Defaults without a config file.
	cmd = NewWatchCommand()
	re.NoError(cmd.ParseFlags(nil))
	cfg = &watchConfig{}
	re.NoError(cfg.parse(cmd.Flags()))
	re.Equal(suspendmon.NewConfig(), cfg.Monitor)
	re.Equal(defaultLogLevel, cfg.Log.Level)
	re.Empty(cfg.StatusAddr)
	re.Zero(cfg.Duration.Duration)
}

func TestWatchConfigInvalid(t *testing.T) {
	re := require.New(t)
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "undefined item",
			content: "no-such-item = 1\n",
			errMsg:  "no-such-item",
		},
		{
			name:    "negative interval",
			content: "[monitor]\ninterval = \"-1s\"\n",
			errMsg:  "interval must be positive",
		},
		{
			name:    "unknown log level",
			content: "[log]\nlevel = \"verbose\"\n",
			errMsg:  "unknown log level verbose",
		},
		{
			name:    "bad duration",
			content: "duration = \"soon\"\n",
			errMsg:  "ErrLoadConfig",
		},
	}
	for _, tc := range testCases {
		cmd := NewWatchCommand()
		re.NoError(cmd.ParseFlags([]string{"--config", writeConfig(t, tc.content)}), tc.name)
		cfg := &watchConfig{}
		err := cfg.parse(cmd.Flags())
		re.Error(err, tc.name)
		re.Contains(err.Error(), tc.errMsg, tc.name)
	}
}

func TestWatchFlagsInvalid(t *testing.T) {
	re := require.New(t)
	testCases := []struct {
		args   []string
		errMsg string
	}{
		{[]string{"--interval", "0s"}, "interval must be positive"},
		{[]string{"--interval", "-1s"}, "interval must be positive"},
		{[]string{"--threshold", "0s"}, "threshold must be positive"},
		{[]string{"--interval", "0s", "--log-level", "verbose"}, "unknown log level verbose"},
	}
	for _, tc := range testCases {
		cmd := NewWatchCommand()
		re.NoError(cmd.ParseFlags(tc.args))
		cfg := &watchConfig{}
		err := cfg.parse(cmd.Flags())
		re.Error(err, tc.args)
		re.Contains(err.Error(), tc.errMsg, tc.args)
	}

	// Flags are validated on top of a config file as well.
	cmd := NewWatchCommand()
	path := writeConfig(t, "[monitor]\ninterval = \"250ms\"\n")
	re.NoError(cmd.ParseFlags([]string{"--config", path, "--interval", "0s"}))
	err := (&watchConfig{}).parse(cmd.Flags())
	re.Error(err)
	re.Contains(err.Error(), "interval must be positive")

	output := execute(re, NewWatchCommand(), "--interval", "0s")
	re.Contains(output, "Failed to load config")
	re.Contains(output, "interval must be positive")
}

func TestStatusHandler(t *testing.T) {
	re := require.New(t)
	monitor := suspendmon.NewMonitor(suspendmon.NewConfig())
	handler := newStatusHandler(monitor)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	re.Equal(http.StatusOK, w.Code)
	resp := &statusResponse{}
	re.NoError(json.Unmarshal(w.Body.Bytes(), resp))
	re.Equal(clocksource.Name(), resp.Provider)
	re.Equal(monitor.ID(), resp.MonitorID)
	re.NotZero(resp.Including)
	re.Zero(resp.Samples)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	re.Equal(http.StatusOK, w.Code)
	re.Contains(w.Body.String(), "monoclock_suspendmon_samples_total")

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/status", nil))
	re.Equal(http.StatusMethodNotAllowed, w.Code)
}
