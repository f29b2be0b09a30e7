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
	"strings"

	"github.com/spf13/cobra"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/instant"
)

const (
	variantIncluding = "including"
	variantExcluding = "excluding"
	variantBoth      = "both"
)

func withVariantFlag(cmd *cobra.Command, def string) {
	cmd.Flags().StringP("variant", "v", def, "clock variant, one of including, excluding"+bothHint(def))
}

func bothHint(def string) string {
	if def == variantBoth {
		return ", both"
	}
	return ""
}

func getVariant(cmd *cobra.Command, allowBoth bool) (string, error) {
	variant, err := cmd.Flags().GetString("variant")
	if err != nil {
		return "", err
	}
	variant = strings.ToLower(variant)
	switch variant {
	case variantIncluding, variantExcluding:
		return variant, nil
	case variantBoth:
		if allowBoth {
			return variant, nil
		}
	}
	return "", errs.ErrInvalidVariant.FastGenByArgs(variant)
}

func clockName(variant string) string {
	if variant == variantExcluding {
		return instant.VariantName[instant.ExcludingSuspend]()
	}
	return instant.VariantName[instant.IncludingSuspend]()
}
