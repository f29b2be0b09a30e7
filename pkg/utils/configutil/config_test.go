// Copyright 2022 TiKV Project Authors.
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

package configutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/utils/typeutil"
)

type testConfig struct {
	Name     string            `toml:"name"`
	Interval typeutil.Duration `toml:"interval"`
	Log      struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigFromFile(t *testing.T) {
	re := require.New(t)
	path := writeConfig(t, `
name = "watch"
interval = "250ms"

[log]
level = "debug"
`)
	cfg := &testConfig{}
	meta, err := ConfigFromFile(cfg, path)
	re.NoError(err)
	re.Equal("watch", cfg.Name)
	re.Equal(250*time.Millisecond, cfg.Interval.Duration)

	md := NewConfigMetadata(meta)
	re.True(md.IsDefined("interval"))
	re.False(md.IsDefined("threshold"))
	re.True(md.Child("log").IsDefined("level"))
	re.False(md.Child("log").IsDefined("file"))
	re.NoError(md.CheckUndecoded())

	re.False(NewConfigMetadata(nil).IsDefined("interval"))
	re.NoError(NewConfigMetadata(nil).CheckUndecoded())
}

func TestConfigUndecoded(t *testing.T) {
	re := require.New(t)
	path := writeConfig(t, `
name = "watch"
unknown-item = 1
`)
	cfg := &testConfig{}
	meta, err := ConfigFromFile(cfg, path)
	re.NoError(err)
	err = NewConfigMetadata(meta).CheckUndecoded()
	re.Error(err)
	re.True(errs.ErrInvalidConfig.Equal(err))
	re.Contains(err.Error(), "unknown-item")
}

func TestConfigFromMissingFile(t *testing.T) {
	re := require.New(t)
	_, err := ConfigFromFile(&testConfig{}, filepath.Join(t.TempDir(), "missing.toml"))
	re.ErrorContains(err, "MONO:config:ErrLoadConfig")
}

func TestAdjust(t *testing.T) {
	re := require.New(t)
	d := typeutil.Duration{}
	AdjustDuration(&d, time.Second)
	re.Equal(time.Second, d.Duration)
	AdjustDuration(&d, time.Minute)
	re.Equal(time.Second, d.Duration)

	s := ""
	AdjustString(&s, "a")
	re.Equal("a", s)
	AdjustString(&s, "b")
	re.Equal("a", s)
}
