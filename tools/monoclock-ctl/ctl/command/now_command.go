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
	"github.com/spf13/cobra"

	"github.com/tikv/monoclock/pkg/instant"
)

// NewNowCommand return a now subcommand of rootCmd
func NewNowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now [--variant=including|excluding|both]",
		Short: "show the current monotonic timestamps in nanoseconds",
		Run:   showNowCommandFunc,
	}
	withVariantFlag(cmd, variantBoth)
	return cmd
}

func showNowCommandFunc(cmd *cobra.Command, _ []string) {
	variant, err := getVariant(cmd, true)
	if err != nil {
		cmd.Printf("Failed to read clock: %s\n", err)
		return
	}
	switch variant {
	case variantIncluding:
		cmd.Println(instant.NowIncludingSuspend().AsTimestamp())
	case variantExcluding:
		cmd.Println(instant.NowExcludingSuspend().AsTimestamp())
	default:
		inc, exc := instant.NowIncludingSuspend(), instant.NowExcludingSuspend()
		cmd.Printf("%s: %d\n", clockName(variantIncluding), inc.AsTimestamp())
		cmd.Printf("%s: %d\n", clockName(variantExcluding), exc.AsTimestamp())
	}
}
