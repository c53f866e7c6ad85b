/*
Copyright (c) YugabyteDB, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigFlagOverride records a flag whose value was taken from the config file or environment.
type ConfigFlagOverride struct {
	FlagName  string
	ConfigKey string
	Value     string
}

/*
bindCobraFlagsToViper sets every flag of cmd that was not given on the command
line from v. The command specific key wins over the global key.

	yb-objnames enumerate --max-depth   <- enumerate.max-depth, then max-depth
	yb-objnames resolve --log-level     <- resolve.log-level, then log-level

Command-line input always takes precedence.
*/
func bindCobraFlagsToViper(cmd *cobra.Command, v *viper.Viper) ([]ConfigFlagOverride, error) {
	var bindErr error
	var overrides []ConfigFlagOverride

	subCmdPath := strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name())
	subCmdPath = strings.TrimSpace(subCmdPath)
	configKeyPrefix := strings.ReplaceAll(subCmdPath, " ", "-")

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed || f.Name == "config" {
			return
		}
		keys := lo.Compact([]string{lo.Ternary(configKeyPrefix != "", configKeyPrefix+"."+f.Name, ""), f.Name})
		key, found := lo.Find(keys, v.IsSet)
		if !found {
			return
		}
		val := v.GetString(key)
		err := cmd.Flags().Set(f.Name, val)
		if err != nil {
			bindErr = err
			return
		}
		overrides = append(overrides, ConfigFlagOverride{FlagName: f.Name, ConfigKey: key, Value: val})
	})
	return overrides, bindErr
}
