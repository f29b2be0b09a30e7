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
	"os"

	"github.com/spf13/cobra"

	"github.com/tikv/monoclock/tools/monoclock-ctl/ctl/command"
)

func init() {
	cobra.EnablePrefixMatching = true
}

// GetRootCmd is exposed for integration tests. But it can be used elsewhere.
func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "monoclock-ctl",
		Short: "Monotonic clock inspection tool",
	}

	rootCmd.AddCommand(
		command.NewNowCommand(),
		command.NewElapsedCommand(),
		command.NewInfoCommand(),
		command.NewWatchCommand(),
	)

	rootCmd.SilenceErrors = true
	rootCmd.SetOut(os.Stdout)
	return rootCmd
}

// MainStart starts the main command.
func MainStart(args []string) error {
	rootCmd := GetRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		rootCmd.Println(err)
		return err
	}
	return nil
}
