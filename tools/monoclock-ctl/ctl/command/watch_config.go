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
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/suspendmon"
	"github.com/tikv/monoclock/pkg/utils/configutil"
	"github.com/tikv/monoclock/pkg/utils/logutil"
	"github.com/tikv/monoclock/pkg/utils/typeutil"
)

const defaultLogLevel = "info"

// watchConfig is the configuration of the watch command.
type watchConfig struct {
	// StatusAddr serves /metrics and /status, leave empty to disable.
	StatusAddr string `toml:"status-addr" json:"status-addr"`
	// Duration stops watching after the given time, 0 means until a signal arrives.
	Duration typeutil.Duration `toml:"duration" json:"duration"`

	Monitor suspendmon.Config `toml:"monitor" json:"monitor"`
	Log     log.Config        `toml:"log" json:"log"`
}

func withWatchFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringP("config", "c", "", "config file")
	fs.String("status-addr", "", "address to serve /metrics and /status, empty to disable")
	fs.Duration("duration", 0, "stop watching after the duration, 0 to watch until interrupted")
	fs.Duration("interval", time.Second, "interval to sample the clocks")
	fs.Duration("threshold", 200*time.Millisecond, "minimum clock divergence within one interval reported as a suspension")
	fs.String("log-level", defaultLogLevel, "log level")
	fs.String("log-file", "", "log file path")
}

// parse loads the config file named by --config, fills the items it leaves
// undefined with defaults, then applies the flags that were set explicitly.
// Flags are applied last so an explicit zero or negative value is validated
// instead of being taken for an unset one.
func (c *watchConfig) parse(fs *pflag.FlagSet) error {
	var meta *toml.MetaData
	configFile, err := fs.GetString("config")
	if err != nil {
		return err
	}
	if configFile != "" {
		meta, err = configutil.ConfigFromFile(c, configFile)
		if err != nil {
			return err
		}
		if err := configutil.NewConfigMetadata(meta).CheckUndecoded(); err != nil {
			return err
		}
	}
	c.adjust(configutil.NewConfigMetadata(meta))

	if fs.Changed("status-addr") {
		c.StatusAddr, _ = fs.GetString("status-addr")
	}
	if fs.Changed("duration") {
		d, _ := fs.GetDuration("duration")
		c.Duration = typeutil.NewDuration(d)
	}
	if fs.Changed("interval") {
		d, _ := fs.GetDuration("interval")
		c.Monitor.Interval = typeutil.NewDuration(d)
	}
	if fs.Changed("threshold") {
		d, _ := fs.GetDuration("threshold")
		c.Monitor.Threshold = typeutil.NewDuration(d)
	}
	if fs.Changed("log-level") {
		c.Log.Level, _ = fs.GetString("log-level")
	}
	if fs.Changed("log-file") {
		c.Log.File.Filename, _ = fs.GetString("log-file")
	}

	return c.validate()
}

func (c *watchConfig) adjust(meta *configutil.ConfigMetaData) {
	c.Monitor.Adjust(meta.Child("monitor"))
	configutil.AdjustString(&c.Log.Level, defaultLogLevel)
}

func (c *watchConfig) validate() error {
	var errList []error
	if err := c.Monitor.Validate(); err != nil {
		errList = append(errList, multierr.Errors(err)...)
	}
	if c.Duration.Duration < 0 {
		errList = append(errList, errs.ErrInvalidConfig.FastGenByArgs("duration must not be negative"))
	}
	if !logutil.IsLevelLegal(c.Log.Level) {
		errList = append(errList, errs.ErrInvalidConfig.FastGenByArgs("unknown log level "+c.Log.Level))
	}
	return errs.AggregateErrors(errList)
}
