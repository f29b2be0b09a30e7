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

package ctl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tikv/monoclock/pkg/clocksource"
)

func TestRootCommand(t *testing.T) {
	re := require.New(t)
	rootCmd := GetRootCmd()
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	re.Subset(names, []string{"now", "elapsed", "info", "watch"})

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"inf"})
	re.NoError(rootCmd.Execute())
	re.Contains(buf.String(), clocksource.Name())
}

func TestMainStartUnknownCommand(t *testing.T) {
	re := require.New(t)
	re.Error(MainStart([]string{"no-such-command"}))
}
