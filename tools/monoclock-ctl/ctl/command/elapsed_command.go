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
	"strconv"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/instant"
)

// NewElapsedCommand return an elapsed subcommand of rootCmd
func NewElapsedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elapsed <timestamp> [--variant=including|excluding]",
		Short: "show the time elapsed since a timestamp taken by `now` in this boot session",
		Run:   showElapsedCommandFunc,
	}
	withVariantFlag(cmd, variantIncluding)
	return cmd
}

func showElapsedCommandFunc(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Println("Usage: elapsed <timestamp>")
		return
	}
	ts, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		cmd.Printf("Failed to parse timestamp: %s, %s\n", errs.ErrParseTimestamp.FastGenByArgs(args[0]), err)
		return
	}
	variant, err := getVariant(cmd, false)
	if err != nil {
		cmd.Printf("Failed to read clock: %s\n", err)
		return
	}

	var (
		d  time.Duration
		ok bool
	)
	if variant == variantExcluding {
		d, ok = elapsedSince[instant.ExcludingSuspend](ts)
	} else {
		d, ok = elapsedSince[instant.IncludingSuspend](ts)
	}
	if !ok {
		cmd.Printf("Failed to compute elapsed time: %d is ahead of the %s clock, it was not taken in this boot session\n",
			ts, clockName(variant))
		return
	}
	cmd.Printf("elapsed: %s (%s)\n", d, units.HumanDuration(d))
}

func elapsedSince[V instant.Variant](ts uint64) (time.Duration, bool) {
	return instant.Now[V]().CheckedDurationSince(instant.FromTimestamp[V](ts))
}
