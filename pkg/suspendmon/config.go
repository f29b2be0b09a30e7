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

package suspendmon

import (
	"time"

	"go.uber.org/multierr"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/utils/configutil"
	"github.com/tikv/monoclock/pkg/utils/typeutil"
)

const (
	defaultInterval  = time.Second
	defaultThreshold = 200 * time.Millisecond
)

// Config is the suspend monitor configuration.
type Config struct {
	// Interval is how often both clocks are sampled.
	Interval typeutil.Duration `toml:"interval" json:"interval"`
	// Threshold is the minimum divergence between the two clocks within one
	// interval that is reported as a suspension.
	Threshold typeutil.Duration `toml:"threshold" json:"threshold"`
}

// NewConfig returns a config with default values.
func NewConfig() Config {
	return Config{
		Interval:  typeutil.NewDuration(defaultInterval),
		Threshold: typeutil.NewDuration(defaultThreshold),
	}
}

// Adjust fills the items that are not defined in meta with default values.
func (c *Config) Adjust(meta *configutil.ConfigMetaData) {
	if !meta.IsDefined("interval") {
		configutil.AdjustDuration(&c.Interval, defaultInterval)
	}
	if !meta.IsDefined("threshold") {
		configutil.AdjustDuration(&c.Threshold, defaultThreshold)
	}
}

// Validate checks the config.
func (c *Config) Validate() error {
	var err error
	if c.Interval.Duration <= 0 {
		err = multierr.Append(err, errs.ErrInvalidConfig.FastGenByArgs("interval must be positive"))
	}
	if c.Threshold.Duration <= 0 {
		err = multierr.Append(err, errs.ErrInvalidConfig.FastGenByArgs("threshold must be positive"))
	}
	return err
}
